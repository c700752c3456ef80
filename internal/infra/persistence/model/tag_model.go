package model

import (
	"time"

	"github.com/google/uuid"
)

// TagModel mirrors the 'tags' table. Tag names are globally unique.
type TagModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name        string    `gorm:"type:varchar(100);unique;not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (TagModel) TableName() string {
	return "tags"
}

// EntityTagModel mirrors the 'entity_tags' table. The unique index keeps a
// tag from being attached to the same entity twice.
type EntityTagModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	EntityID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_entity_tags_entity_tag"`
	EntityType string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_entity_tags_entity_tag"`
	TagID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_entity_tags_entity_tag"`
}

// TableName explicitly sets the table name for GORM.
func (EntityTagModel) TableName() string {
	return "entity_tags"
}
