package repositories_test

import (
	"testing"

	"github.com/Pranay-Bhilare/op-atlas/database"
	"github.com/Pranay-Bhilare/op-atlas/database/models"
	"github.com/Pranay-Bhilare/op-atlas/database/repositories"
	"github.com/Pranay-Bhilare/op-atlas/integrationtestutil"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestContractNaturalKey(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	contractRepository := repositories.NewContractRepository(testDB)
	project := integrationtestutil.CreateProject(testDB, "contract-project")

	contract := models.ProjectContract{
		ProjectID:       project.ID,
		ContractAddress: "0xabc",
		ChainID:         10,
		DeployerAddress: "0xdeployer",
	}
	assert.Nil(t, contractRepository.Create(nil, &contract))

	t.Run("the same address on the same chain conflicts", func(t *testing.T) {
		dup := models.ProjectContract{ProjectID: project.ID, ContractAddress: "0xabc", ChainID: 10, DeployerAddress: "0xother"}
		err := contractRepository.Create(nil, &dup)
		assert.NotNil(t, err)
		assert.True(t, database.IsDuplicateKeyError(err))
	})

	t.Run("the same address on another chain is a different contract", func(t *testing.T) {
		other := models.ProjectContract{ProjectID: project.ID, ContractAddress: "0xabc", ChainID: 8453, DeployerAddress: "0xdeployer"}
		assert.Nil(t, contractRepository.Create(nil, &other))
	})

	t.Run("contracts are found by deployer", func(t *testing.T) {
		contracts, err := contractRepository.FindByDeployer(project.ID, "0xdeployer")
		assert.Nil(t, err)
		assert.Len(t, contracts, 2)
	})

	t.Run("removing an unknown contract is a not-found", func(t *testing.T) {
		err := contractRepository.Remove(nil, project.ID, "0xmissing", 10)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("removing by natural key deletes exactly that contract", func(t *testing.T) {
		err := contractRepository.Remove(nil, project.ID, "0xabc", 10)
		assert.Nil(t, err)

		contracts, err := contractRepository.FindByDeployer(project.ID, "0xdeployer")
		assert.Nil(t, err)
		assert.Len(t, contracts, 1)
		assert.Equal(t, 8453, contracts[0].ChainID)
	})
}
