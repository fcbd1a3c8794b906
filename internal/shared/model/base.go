package model

import "time"

// Base carries the persistence contract shared by every stored entity:
// storage-assigned integer identity, soft-delete flag, and audit timestamps.
// Embed it in an entity struct to make the entity usable with
// repository.Repository.
type Base struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	IsDeleted bool      `gorm:"not null;default:false" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *Base) PrimaryKey() int { return b.ID }

// MarkDeleted flips the soft-delete flag. The row stays in storage and is
// excluded from every repository read afterwards.
func (b *Base) MarkDeleted() { b.IsDeleted = true }
