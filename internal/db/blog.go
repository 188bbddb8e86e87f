package db

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Blog 状态枚举。draft 仅存在于数据模型中，当前没有端点可以写入或转换它。
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Blog 定义了博客文章模型
type Blog struct {
	ID            string    `gorm:"type:text;primaryKey" json:"id"`
	Title         string    `gorm:"size:200;not null;index:idx_blogs_title" json:"title"`
	Content       string    `gorm:"not null" json:"content"`
	Excerpt       string    `gorm:"size:300" json:"excerpt"`
	Tags          []string  `gorm:"serializer:json" json:"tags"`
	FeaturedImage string    `json:"featuredImage"`
	AuthorID      string    `gorm:"type:text;not null;index" json:"authorId"`
	Author        *User     `gorm:"foreignKey:AuthorID" json:"author"`
	Status        string    `gorm:"default:published;index" json:"status"`
	ReadingTime   int       `json:"readTime"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// BeforeCreate 在插入前分配不可变的记录ID。
func (b *Blog) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
