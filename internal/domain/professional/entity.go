package professional

import (
	"errors"
	"strings"

	"clinic-scheduler/internal/domain/schedule"

	"github.com/google/uuid"
)

var ErrInvalidName = errors.New("professional name cannot be empty")

// Professional is the scheduling view of a directory entry: identity plus the
// working-hour window availability is derived from. The directory service owns
// the full record; this entity is reconstructed per request and never written.
type Professional struct {
	id             uuid.UUID
	firstName      string
	lastName       string
	specialization string
	window         schedule.Window
}

func NewProfessional(id uuid.UUID, firstName, lastName, specialization string, workStartMin, workEndMin int) (*Professional, error) {
	if strings.TrimSpace(firstName) == "" || strings.TrimSpace(lastName) == "" {
		return nil, ErrInvalidName
	}

	window, err := schedule.NewWindow(workStartMin, workEndMin)
	if err != nil {
		return nil, err
	}

	return &Professional{
		id:             id,
		firstName:      firstName,
		lastName:       lastName,
		specialization: specialization,
		window:         window,
	}, nil
}

func (p *Professional) ID() uuid.UUID           { return p.id }
func (p *Professional) FirstName() string       { return p.firstName }
func (p *Professional) LastName() string        { return p.lastName }
func (p *Professional) Specialization() string  { return p.specialization }
func (p *Professional) Window() schedule.Window { return p.window }
