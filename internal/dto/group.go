package dto

import "github.com/d60-Lab/yatube/internal/model"

type Group struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

func FromGroup(g *model.Group) Group {
	return Group{ID: g.ID, Title: g.Title, Slug: g.Slug, Description: g.Description}
}

func FromGroups(groups []*model.Group) []Group {
	out := make([]Group, len(groups))
	for i, g := range groups {
		out[i] = FromGroup(g)
	}
	return out
}
