package integrationtestutil

import (
	"github.com/Pranay-Bhilare/op-atlas/database/models"
	"github.com/Pranay-Bhilare/op-atlas/shared"
)

func CreateUser(db shared.DB, name string) models.User {
	user := models.User{Name: name}
	if err := db.Create(&user).Error; err != nil {
		panic(err)
	}
	return user
}

func CreateProject(db shared.DB, name string) models.Project {
	project := models.Project{Name: name, Description: "a test project"}
	if err := db.Create(&project).Error; err != nil {
		panic(err)
	}
	return project
}

// CreateProjectWithAdmin wires a user and their admin membership up along
// with the project, the way the project service does on create.
func CreateProjectWithAdmin(db shared.DB, name string, userName string) (models.Project, models.User) {
	user := CreateUser(db, userName)
	project := CreateProject(db, name)
	membership := models.UserProject{
		UserID:    user.ID,
		ProjectID: project.ID,
		Role:      models.TeamRoleAdmin,
	}
	if err := db.Create(&membership).Error; err != nil {
		panic(err)
	}
	return project, user
}

func CreateFundingRound(db shared.DB, id string, name string) models.FundingRound {
	round := models.FundingRound{ID: id, Name: name, Description: "a test round"}
	if err := db.Create(&round).Error; err != nil {
		panic(err)
	}
	return round
}
