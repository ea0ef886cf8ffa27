package postgres

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Position keeps the source row order so that last-write-wins merges are
// reproducible after a round trip through the database.

type MemberRecord struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;column:id"`
	Position           int       `gorm:"column:position;index"`
	Name               string    `gorm:"column:name;not null"`
	Party              string    `gorm:"column:party"`
	MdbID              string    `gorm:"column:mdb_id;index"`
	ConstituencyNumber string    `gorm:"column:constituency_number;size:3;index"`
	ContactURL         string    `gorm:"column:contact_url"`
	ProfileURL         string    `gorm:"column:profile_url"`
}

func (MemberRecord) TableName() string { return "bundestag.members" }

type ConstituencyRecord struct {
	Number   string         `gorm:"primaryKey;column:number;size:3"`
	Name     string         `gorm:"column:name"`
	Keywords pq.StringArray `gorm:"type:text[];column:keywords"`
}

func (ConstituencyRecord) TableName() string { return "bundestag.constituencies" }

type ContactRecord struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;column:id"`
	Position   int       `gorm:"column:position;index"`
	Name       string    `gorm:"column:name"`
	ContactURL string    `gorm:"column:contact_url"`
}

func (ContactRecord) TableName() string { return "bundestag.contacts" }

type GenderRecord struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;column:id"`
	Position int       `gorm:"column:position;index"`
	Name     string    `gorm:"column:name"`
	Gender   string    `gorm:"column:gender"`
}

func (GenderRecord) TableName() string { return "bundestag.gender_names" }

type LocalityRecord struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;column:id"`
	Position int       `gorm:"column:position;index"`
	FromCode string    `gorm:"column:from_code;size:5"`
	ToCode   string    `gorm:"column:to_code;size:5"`
	City     string    `gorm:"column:city"`
}

func (LocalityRecord) TableName() string { return "bundestag.localities" }
