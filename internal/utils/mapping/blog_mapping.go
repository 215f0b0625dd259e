package mapping

import (
	"github.com/SscSPs/blogging_platform_app/internal/core/domain"
	"github.com/SscSPs/blogging_platform_app/internal/models"
)

func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID: m.CategoryID,
		Name:       m.Name,
		CreatedAt:  m.CreatedAt,
	}
}

// ToModelBlogPost converts a domain BlogPost to its row representation.
func ToModelBlogPost(d domain.BlogPost) models.BlogPost {
	return models.BlogPost{
		PostID:         d.PostID,
		AuthorID:       d.AuthorID,
		AuthorUsername: d.AuthorUsername,
		Title:          d.Title,
		Content:        d.Content,
		CategoryID:     d.Category.CategoryID,
		CategoryName:   d.Category.Name,
		ImageURL:       d.ImageURL,
		Status:         string(d.Status),
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
		DeletedAt:      d.DeletedAt,
	}
}

// ToDomainBlogPost converts a joined blog post row to a domain BlogPost.
func ToDomainBlogPost(m models.BlogPost) domain.BlogPost {
	return domain.BlogPost{
		PostID:         m.PostID,
		AuthorID:       m.AuthorID,
		AuthorUsername: m.AuthorUsername,
		Title:          m.Title,
		Content:        m.Content,
		Category: domain.Category{
			CategoryID: m.CategoryID,
			Name:       m.CategoryName,
		},
		ImageURL:  m.ImageURL,
		Status:    domain.PostStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		DeletedAt: m.DeletedAt,
	}
}

// ToDomainBlogPostSlice converts a slice of rows.
func ToDomainBlogPostSlice(ms []models.BlogPost) []domain.BlogPost {
	ds := make([]domain.BlogPost, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBlogPost(m)
	}
	return ds
}

func ToModelComment(d domain.Comment) models.Comment {
	return models.Comment{
		CommentID:   d.CommentID,
		PostID:      d.PostID,
		AuthorName:  d.AuthorName,
		AuthorEmail: d.AuthorEmail,
		Content:     d.Content,
		CreatedAt:   d.CreatedAt,
	}
}

func ToDomainComment(m models.Comment) domain.Comment {
	return domain.Comment{
		CommentID:   m.CommentID,
		PostID:      m.PostID,
		AuthorName:  m.AuthorName,
		AuthorEmail: m.AuthorEmail,
		Content:     m.Content,
		CreatedAt:   m.CreatedAt,
	}
}

func ToDomainCommentSlice(ms []models.Comment) []domain.Comment {
	ds := make([]domain.Comment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainComment(m)
	}
	return ds
}
