// File: services/patient/patient.go
package patient

import (
	"context"
	"fmt"

	patientRepo "consulta/database/repository/patient"
	"consulta/models"
	"consulta/utils"

	"go.uber.org/zap"
)

// PatientService manages the therapist's patient records.
type PatientService interface {
	Create(ctx context.Context, p models.Patient) (*models.Patient, error)
	GetByID(ctx context.Context, id string) (*models.Patient, error)
	List(ctx context.Context, includeArchived bool) ([]models.Patient, error)
	Update(ctx context.Context, p models.Patient) error
	Archive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	// NameIndex returns a display-name lookup snapshot for the projector.
	NameIndex(ctx context.Context) (NameIndex, error)
}

// NameIndex maps patient ids to display names. It satisfies the
// projector's name-lookup capability.
type NameIndex map[string]string

func (n NameIndex) DisplayName(patientID string) (string, bool) {
	name, ok := n[patientID]
	return name, ok
}

// DefaultPatientService implements PatientService.
type DefaultPatientService struct {
	Repo patientRepo.PatientRepository
}

func (s *DefaultPatientService) Create(ctx context.Context, p models.Patient) (*models.Patient, error) {
	if p.FirstName == "" && p.LastName == "" {
		return nil, fmt.Errorf("patient needs a name")
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}
	created := p
	return &created, nil
}

func (s *DefaultPatientService) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultPatientService) List(ctx context.Context, includeArchived bool) ([]models.Patient, error) {
	return s.Repo.GetAll(ctx, includeArchived)
}

func (s *DefaultPatientService) Update(ctx context.Context, p models.Patient) error {
	if p.ID == "" {
		return fmt.Errorf("patient id is required")
	}
	return s.Repo.Update(ctx, p)
}

func (s *DefaultPatientService) Archive(ctx context.Context, id string) error {
	return s.Repo.SetArchived(ctx, id, true)
}

func (s *DefaultPatientService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

// NameIndex snapshots all patients' display names. A lookup failure is not
// fatal to rendering: the projector falls back to its placeholder.
func (s *DefaultPatientService) NameIndex(ctx context.Context) (NameIndex, error) {
	patients, err := s.Repo.GetAll(ctx, true)
	if err != nil {
		utils.GetLogger().Warn("patient: failed to build name index", zap.Error(err))
		return nil, err
	}
	index := make(NameIndex, len(patients))
	for i := range patients {
		index[patients[i].ID] = patients[i].DisplayName()
	}
	return index, nil
}
