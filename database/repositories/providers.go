// Copyright (C) 2025 the op-atlas authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package repositories

import (
	"github.com/Pranay-Bhilare/op-atlas/shared"
	"go.uber.org/fx"
)

// Module provides all repository constructors as their interfaces
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewProjectRepository, fx.As(new(shared.ProjectRepository)))),
	fx.Provide(fx.Annotate(NewMemberRepository, fx.As(new(shared.MemberRepository)))),
	fx.Provide(fx.Annotate(NewRepoRepository, fx.As(new(shared.RepoRepository)))),
	fx.Provide(fx.Annotate(NewContractRepository, fx.As(new(shared.ContractRepository)))),
	fx.Provide(fx.Annotate(NewFundingRepository, fx.As(new(shared.FundingRepository)))),
	fx.Provide(fx.Annotate(NewSnapshotRepository, fx.As(new(shared.SnapshotRepository)))),
	fx.Provide(fx.Annotate(NewApplicationRepository, fx.As(new(shared.ApplicationRepository)))),
	fx.Provide(fx.Annotate(NewFundingRoundRepository, fx.As(new(shared.FundingRoundRepository)))),
	fx.Provide(fx.Annotate(NewUserRepository, fx.As(new(shared.UserRepository)))),
	fx.Provide(fx.Annotate(NewRewardRepository, fx.As(new(shared.RewardRepository)))),
)
