package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/feeds"

	"github.com/narasux/chemreact/pkg/envs"
	"github.com/narasux/chemreact/pkg/model"
	"github.com/narasux/chemreact/pkg/service"
)

// GetReactionFeed 已验证反应的 Atom 订阅源
func GetReactionFeed(c *gin.Context) {
	reactions, err := service.VerifiedReactions(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	atom, err := buildReactionFeed(reactions).ToAtom()
	if err != nil {
		respondError(c, err)
		return
	}

	// 不直接使用 c.XML() 以避免被包装 <string></string>
	c.Writer.Header().Set("Content-Type", "application/atom+xml; charset=utf-8")
	c.Writer.WriteHeader(http.StatusOK)
	_, _ = c.Writer.Write([]byte(atom))
}

func buildReactionFeed(reactions model.Reactions) *feeds.Feed {
	baseURL := fmt.Sprintf("%s://%s", envs.DomainScheme, envs.Domain)
	feed := &feeds.Feed{
		Title:       "ChemReact",
		Link:        &feeds.Link{Href: baseURL + "/reactions"},
		Description: "Reacciones químicas verificadas",
	}
	for _, r := range reactions {
		// 订阅源更新时间取最近更新的反应
		if r.UpdatedAt.After(feed.Updated) {
			feed.Updated = r.UpdatedAt
		}
		feed.Items = append(feed.Items, &feeds.Item{
			Id:    fmt.Sprintf("%s/reactions/%d", baseURL, r.ID),
			Title: r.Name,
			Link:  &feeds.Link{Href: fmt.Sprintf("%s/reactions/%d", baseURL, r.ID)},
			Description: fmt.Sprintf(
				"%s (%s, %s)", r.Equation,
				model.ReactionTypes.Label(r.ReactionType), model.DifficultyLabels[r.DifficultyLevel],
			),
			Content: r.EducationalNotes,
			Created: r.CreatedAt,
			Updated: r.UpdatedAt,
		})
	}
	if feed.Updated.IsZero() {
		feed.Updated = time.Now()
	}
	return feed
}
