package transformer

import (
	"github.com/Pranay-Bhilare/op-atlas/database/models"
	"github.com/Pranay-Bhilare/op-atlas/dtos"
)

func SnapshotCreateRequestToModel(req dtos.SnapshotCreateRequest) models.ProjectSnapshot {
	return models.ProjectSnapshot{
		IpfsHash:      req.IpfsHash,
		AttestationID: req.AttestationID,
	}
}

func SnapshotModelToDTO(snapshot models.ProjectSnapshot) dtos.SnapshotDTO {
	return dtos.SnapshotDTO{
		ID:            snapshot.ID,
		ProjectID:     snapshot.ProjectID,
		IpfsHash:      snapshot.IpfsHash,
		AttestationID: snapshot.AttestationID,
		CreatedAt:     snapshot.CreatedAt,
	}
}
