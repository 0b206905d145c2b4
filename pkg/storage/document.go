package storage

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/papercomputeco/recruit/pkg/model"
	"github.com/papercomputeco/recruit/pkg/person"
	"github.com/papercomputeco/recruit/pkg/tag"
)

// Document is the persisted form of the full person list.
type Document struct {
	Persons []PersonRecord `json:"persons"`
}

// PersonRecord is the persisted form of one person. Tags are stored as their
// raw names and go through the same validation as user input when loaded.
type PersonRecord struct {
	ID      string   `json:"id,omitempty"`
	Name    string   `json:"name"`
	Phone   string   `json:"phone"`
	Email   string   `json:"email"`
	Address string   `json:"address"`
	Comment string   `json:"comment,omitempty"`
	Tags    []string `json:"tags"`
}

// NewDocument converts snap to its persisted form.
func NewDocument(snap model.Snapshot) Document {
	doc := Document{Persons: make([]PersonRecord, 0, len(snap.Persons))}
	for _, p := range snap.Persons {
		doc.Persons = append(doc.Persons, PersonRecord{
			ID:      p.ID.String(),
			Name:    string(p.Name),
			Phone:   string(p.Phone),
			Email:   string(p.Email),
			Address: string(p.Address),
			Comment: string(p.Comment),
			Tags:    p.Tags.Names(),
		})
	}
	return doc
}

// Snapshot validates every record and returns the resulting snapshot. It
// fails if any field is invalid or if two persons share an identity.
func (d Document) Snapshot(identity model.IdentityFunc) (*model.Snapshot, error) {
	snap := &model.Snapshot{Persons: make([]person.Person, 0, len(d.Persons))}
	for i, r := range d.Persons {
		p, err := r.Person()
		if err != nil {
			return nil, fmt.Errorf("person %d: %w", i+1, err)
		}
		snap.Persons = append(snap.Persons, p)
	}

	if err := model.ValidateSnapshot(*snap, identity); err != nil {
		return nil, err
	}
	return snap, nil
}

// Person validates r. Records saved without an ID get a fresh one.
func (r PersonRecord) Person() (person.Person, error) {
	id := uuid.New()
	if r.ID != "" {
		parsed, err := uuid.Parse(r.ID)
		if err != nil {
			return person.Person{}, fmt.Errorf("invalid id %q: %w", r.ID, err)
		}
		id = parsed
	}

	name, err := person.NewName(r.Name)
	if err != nil {
		return person.Person{}, err
	}
	phone, err := person.NewPhone(r.Phone)
	if err != nil {
		return person.Person{}, err
	}
	email, err := person.NewEmail(r.Email)
	if err != nil {
		return person.Person{}, err
	}
	address, err := person.NewAddress(r.Address)
	if err != nil {
		return person.Person{}, err
	}
	tags, err := tag.Parse(r.Tags...)
	if err != nil {
		return person.Person{}, err
	}

	return person.Person{
		ID:      id,
		Name:    name,
		Phone:   phone,
		Email:   email,
		Address: address,
		Comment: person.NewComment(r.Comment),
		Tags:    tags,
	}, nil
}
