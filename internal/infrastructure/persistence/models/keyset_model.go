package models

import (
	"time"

	"github.com/QmFkLVBp/cryptology/internal/domain/keysets"
)

// KeySetModel is the GORM database model for key sets. Integers are stored as text.
type KeySetModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	Name            string    `gorm:"not null;index;type:varchar(255)"`
	P               string    `gorm:"not null;type:text"`
	Q               string    `gorm:"not null;type:text"`
	N               string    `gorm:"not null;type:text"`
	Phi             string    `gorm:"not null;type:text"`
	E               string    `gorm:"not null;type:text"`
	D               string    `gorm:"not null;type:text"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (KeySetModel) TableName() string {
	return "key_sets"
}

// ToDomain converts GORM model to domain entity
func (m *KeySetModel) ToDomain() *keysets.KeySet {
	return &keysets.KeySet{
		ID:              m.ID,
		Name:            m.Name,
		P:               m.P,
		Q:               m.Q,
		N:               m.N,
		Phi:             m.Phi,
		E:               m.E,
		D:               m.D,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *KeySetModel) FromDomain(k *keysets.KeySet) {
	m.ID = k.ID
	m.Name = k.Name
	m.P = k.P
	m.Q = k.Q
	m.N = k.N
	m.Phi = k.Phi
	m.E = k.E
	m.D = k.D
	m.DateTimeCreated = k.DateTimeCreated
}
