package repositories_test

import (
	"testing"

	"github.com/Pranay-Bhilare/op-atlas/database"
	"github.com/Pranay-Bhilare/op-atlas/database/models"
	"github.com/Pranay-Bhilare/op-atlas/database/repositories"
	"github.com/Pranay-Bhilare/op-atlas/integrationtestutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMembershipUniqueness(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	memberRepository := repositories.NewMemberRepository(testDB)
	project, user := integrationtestutil.CreateProjectWithAdmin(testDB, "membership-project", "dave")

	t.Run("adding the same user twice fails", func(t *testing.T) {
		err := memberRepository.AddMembers(nil, project.ID, []uuid.UUID{user.ID}, models.TeamRoleMember)
		assert.NotNil(t, err)
		assert.True(t, database.IsDuplicateKeyError(err))
	})

	t.Run("adding an unknown user fails with a foreign key violation", func(t *testing.T) {
		err := memberRepository.AddMembers(nil, project.ID, []uuid.UUID{uuid.New()}, models.TeamRoleMember)
		assert.NotNil(t, err)
		assert.True(t, database.IsForeignKeyViolationError(err))
	})

	t.Run("role defaults to member", func(t *testing.T) {
		member := integrationtestutil.CreateUser(testDB, "erin")
		err := memberRepository.AddMembers(nil, project.ID, []uuid.UUID{member.ID}, "")
		assert.Nil(t, err)

		membership, err := memberRepository.GetByUserAndProject(member.ID, project.ID)
		assert.Nil(t, err)
		assert.Equal(t, models.TeamRoleMember, membership.Role)
	})
}

func TestUpdateRoleAndRemove(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	memberRepository := repositories.NewMemberRepository(testDB)
	project, user := integrationtestutil.CreateProjectWithAdmin(testDB, "role-project", "frank")

	t.Run("updating a role changes the existing row", func(t *testing.T) {
		err := memberRepository.UpdateRole(nil, project.ID, user.ID, models.TeamRoleMember)
		assert.Nil(t, err)

		memberships, err := memberRepository.ListByProject(project.ID)
		assert.Nil(t, err)
		assert.Len(t, memberships, 1)
		assert.Equal(t, models.TeamRoleMember, memberships[0].Role)
		assert.Equal(t, "frank", memberships[0].User.Name)
	})

	t.Run("updating a missing membership is a not-found, not an insert", func(t *testing.T) {
		err := memberRepository.UpdateRole(nil, project.ID, uuid.New(), models.TeamRoleAdmin)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

		memberships, err := memberRepository.ListByProject(project.ID)
		assert.Nil(t, err)
		assert.Len(t, memberships, 1)
	})

	t.Run("removing a missing membership is a not-found", func(t *testing.T) {
		err := memberRepository.Remove(nil, project.ID, uuid.New())
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("removing the membership deletes exactly one row", func(t *testing.T) {
		err := memberRepository.Remove(nil, project.ID, user.ID)
		assert.Nil(t, err)

		memberships, err := memberRepository.ListByProject(project.ID)
		assert.Nil(t, err)
		assert.Empty(t, memberships)
	})
}
