package handler

import (
	"time"

	"github.com/vchernov/ollama-dashboard/pkg/domain"
	"github.com/vchernov/ollama-dashboard/pkg/render"
)

// TurnView is the wire shape of one transcript turn. Assistant turns carry
// the rendered HTML fragment ready for direct injection into the transcript
// surface; user turns are inserted as plain text by the page.
type TurnView struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	HTML      string    `json:"html,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toView(turn domain.Turn) TurnView {
	view := TurnView{
		Role:      turn.Role,
		Content:   turn.Content,
		CreatedAt: turn.CreatedAt,
	}
	if turn.Role == domain.RoleAssistant {
		view.HTML = render.ToHTML(turn.Content)
	}
	return view
}

func toViews(turns []domain.Turn) []TurnView {
	views := make([]TurnView, 0, len(turns))
	for _, t := range turns {
		views = append(views, toView(t))
	}
	return views
}
