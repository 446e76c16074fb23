package handlers

import (
	"time"

	"github.com/novacast/nova-backend/internal/models"
	"github.com/novacast/nova-backend/internal/storage"
)

// JSON-представления доменных сущностей. Доменные типы наружу не отдаются:
// формат ответа фиксируется здесь и не зависит от внутренних переименований.

type contentView struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Description   string  `json:"description,omitempty"`
	Category      string  `json:"category,omitempty"`
	AuthorID      string  `json:"author_id"`
	AudioKey      string  `json:"audio_key,omitempty"`
	ImageKey      string  `json:"image_key,omitempty"`
	Views         int64   `json:"views"`
	TrendingScore float64 `json:"trending_score"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

func contentFromModel(item models.ContentItem) contentView {
	return contentView{
		ID:            item.ID,
		Title:         item.Title,
		Description:   item.Description,
		Category:      item.Category,
		AuthorID:      item.AuthorID.String(),
		AudioKey:      item.AudioKey,
		ImageKey:      item.ImageKey,
		Views:         item.Views,
		TrendingScore: item.TrendingScore,
		CreatedAt:     item.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     item.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func contentListFromModel(items []models.ContentItem) []contentView {
	out := make([]contentView, 0, len(items))
	for _, it := range items {
		out = append(out, contentFromModel(it))
	}
	return out
}

type userView struct {
	ID                 string `json:"id"`
	Username           string `json:"username"`
	Email              string `json:"email"`
	Tier               string `json:"tier"`
	SubscriptionID     string `json:"subscription_id,omitempty"`
	SubscriptionEndsOn string `json:"subscription_ends_on,omitempty"`
	Credits            int64  `json:"credits"`
	CreatedAt          string `json:"created_at"`
}

func userFromModel(u models.User) userView {
	view := userView{
		ID:             u.ID.String(),
		Username:       u.Username,
		Email:          u.Email,
		Tier:           string(u.Tier),
		SubscriptionID: u.SubscriptionID,
		Credits:        u.Credits,
		CreatedAt:      u.CreatedAt.UTC().Format(time.RFC3339),
	}
	if !u.SubscriptionEndsOn.IsZero() {
		view.SubscriptionEndsOn = u.SubscriptionEndsOn.UTC().Format(time.RFC3339)
	}
	return view
}

type adminUserView struct {
	userView
	ContentCount int64  `json:"content_count"`
	TotalViews   int64  `json:"total_views"`
	Subscription string `json:"subscription"`
}

type usersPageView struct {
	Items         []adminUserView `json:"items"`
	NextPageToken string          `json:"next_page_token,omitempty"`
	HasMore       bool            `json:"has_more"`
}

func usersPageFromModel(page *models.UsersPage) usersPageView {
	items := make([]adminUserView, 0, len(page.Items))
	for _, u := range page.Items {
		items = append(items, adminUserView{
			userView:     userFromModel(u.User),
			ContentCount: u.ContentCount,
			TotalViews:   u.TotalViews,
			Subscription: string(u.Subscription),
		})
	}

	return usersPageView{
		Items:         items,
		NextPageToken: page.NextPageToken,
		HasMore:       page.HasMore,
	}
}

type uploadInfoView struct {
	UploadURL       string            `json:"upload_url"`
	MediaKey        string            `json:"media_key"`
	ExpiresSeconds  int64             `json:"expires_seconds"`
	RequiredHeaders map[string]string `json:"required_headers,omitempty"`
}

func uploadInfoFromModel(info *storage.UploadInfo) uploadInfoView {
	return uploadInfoView{
		UploadURL:       info.UploadURL,
		MediaKey:        info.MediaKey,
		ExpiresSeconds:  int64(info.Expires.Seconds()),
		RequiredHeaders: info.RequiredHeader,
	}
}
