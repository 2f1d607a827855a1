package controllers

import (
	"fmt"

	"github.com/Pranay-Bhilare/op-atlas/dtos"
	"github.com/Pranay-Bhilare/op-atlas/shared"
	"github.com/Pranay-Bhilare/op-atlas/transformer"
	"github.com/Pranay-Bhilare/op-atlas/utils"
	"github.com/labstack/echo/v4"
)

type SnapshotController struct {
	snapshotRepository shared.SnapshotRepository
}

func NewSnapshotController(snapshotRepository shared.SnapshotRepository) *SnapshotController {
	return &SnapshotController{
		snapshotRepository: snapshotRepository,
	}
}

// @Summary List snapshots of a project
// @Security CookieAuth
// @Param projectID path string true "Project id"
// @Success 200 {array} dtos.SnapshotDTO
// @Router /projects/{projectID}/snapshots [get]
func (c *SnapshotController) List(ctx shared.Context) error {
	project := shared.GetProject(ctx)
	snapshots, err := c.snapshotRepository.GetByProjectID(project.ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not list snapshots").WithInternal(err)
	}
	return ctx.JSON(200, utils.Map(snapshots, transformer.SnapshotModelToDTO))
}

// @Summary Record a published snapshot
// @Security CookieAuth
// @Param projectID path string true "Project id"
// @Param body body dtos.SnapshotCreateRequest true "Request body"
// @Success 200 {object} dtos.SnapshotDTO
// @Router /projects/{projectID}/snapshots [post]
func (c *SnapshotController) Create(ctx shared.Context) error {
	var req dtos.SnapshotCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	project := shared.GetProject(ctx)
	snapshot := transformer.SnapshotCreateRequestToModel(req)
	snapshot.ProjectID = project.ID

	if err := c.snapshotRepository.Create(nil, &snapshot); err != nil {
		return echo.NewHTTPError(500, "could not create snapshot").WithInternal(err)
	}

	return ctx.JSON(200, transformer.SnapshotModelToDTO(snapshot))
}
