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

// Package mocks holds hand-written testify mocks for the shared interfaces.
package mocks

import (
	"github.com/Pranay-Bhilare/op-atlas/shared"
	"github.com/Pranay-Bhilare/op-atlas/utils"
	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// repository is the generic part shared by all repository mocks.
type repository[ID any, T utils.Tabler] struct {
	mock.Mock
}

func (m *repository[ID, T]) All() ([]T, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *repository[ID, T]) Read(id ID) (T, error) {
	args := m.Called(id)
	return args.Get(0).(T), args.Error(1)
}

func (m *repository[ID, T]) List(ids []ID) ([]T, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *repository[ID, T]) Create(tx shared.DB, t *T) error {
	args := m.Called(tx, t)
	return args.Error(0)
}

func (m *repository[ID, T]) Save(tx shared.DB, t *T) error {
	args := m.Called(tx, t)
	return args.Error(0)
}

func (m *repository[ID, T]) Delete(tx shared.DB, id ID) error {
	args := m.Called(tx, id)
	return args.Error(0)
}

func (m *repository[ID, T]) CreateBatch(tx shared.DB, ts []T) error {
	args := m.Called(tx, ts)
	return args.Error(0)
}

func (m *repository[ID, T]) SaveBatch(tx shared.DB, ts []T) error {
	args := m.Called(tx, ts)
	return args.Error(0)
}

// Transaction runs f against a nil tx - the mocked repositories do not care
// which handle they get.
func (m *repository[ID, T]) Transaction(f func(tx shared.DB) error) error {
	args := m.Called(f)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return f(nil)
}

func (m *repository[ID, T]) GetDB(tx shared.DB) shared.DB {
	return tx
}

func (m *repository[ID, T]) Begin() shared.DB {
	return nil
}
