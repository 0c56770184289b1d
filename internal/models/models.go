// Package models defines the four vision-board entity kinds together with
// their Create shapes (validation plus server-side minting of id and
// timestamps) and Update shapes (tri-state fields compiled into a patch).
package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Goal struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

func (g Goal) DocID() string { return g.ID }

type GoalCreate struct {
	Title    string `json:"title"`
	Category string `json:"category"`
}

func (c GoalCreate) Validate() error {
	if c.Title == "" {
		return errors.New("title is required")
	}
	if c.Category == "" {
		return errors.New("category is required")
	}
	return nil
}

func (c GoalCreate) Entity() Goal {
	return Goal{
		ID:        uuid.New().String(),
		Title:     c.Title,
		Category:  c.Category,
		CreatedAt: time.Now().UTC(),
	}
}

type GoalUpdate struct {
	Title     Optional[string] `json:"title"`
	Category  Optional[string] `json:"category"`
	Completed Optional[bool]   `json:"completed"`
}

func (u GoalUpdate) Patch() map[string]any {
	patch := map[string]any{}
	put(patch, "title", u.Title)
	put(patch, "category", u.Category)
	put(patch, "completed", u.Completed)
	return patch
}

type Todo struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Priority  string    `json:"priority"` // high, medium or low; not enforced server-side
	DueDate   *string   `json:"dueDate,omitempty"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

func (t Todo) DocID() string { return t.ID }

type TodoCreate struct {
	Title    string  `json:"title"`
	Priority string  `json:"priority"`
	DueDate  *string `json:"dueDate"`
}

func (c TodoCreate) Validate() error {
	if c.Title == "" {
		return errors.New("title is required")
	}
	if c.Priority == "" {
		return errors.New("priority is required")
	}
	return nil
}

func (c TodoCreate) Entity() Todo {
	return Todo{
		ID:        uuid.New().String(),
		Title:     c.Title,
		Priority:  c.Priority,
		DueDate:   c.DueDate,
		CreatedAt: time.Now().UTC(),
	}
}

type TodoUpdate struct {
	Title     Optional[string] `json:"title"`
	Priority  Optional[string] `json:"priority"`
	DueDate   Optional[string] `json:"dueDate"`
	Completed Optional[bool]   `json:"completed"`
}

func (u TodoUpdate) Patch() map[string]any {
	patch := map[string]any{}
	put(patch, "title", u.Title)
	put(patch, "priority", u.Priority)
	put(patch, "dueDate", u.DueDate)
	put(patch, "completed", u.Completed)
	return patch
}

// ImagePosition places an image on the mood-board canvas. On update the
// whole object is replaced, never merged coordinate by coordinate.
type ImagePosition struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Rotation float64 `json:"rotation"`
	ZIndex   int     `json:"zIndex"`
}

type MoodBoardImage struct {
	ID       string        `json:"id"`
	URL      string        `json:"url"`
	Position ImagePosition `json:"position"`
	Width    float64       `json:"width"`
	Height   float64       `json:"height"`
}

func (m MoodBoardImage) DocID() string { return m.ID }

type MoodBoardImageCreate struct {
	URL      string         `json:"url"`
	Position *ImagePosition `json:"position"`
	Width    *float64       `json:"width"`
	Height   *float64       `json:"height"`
}

func (c MoodBoardImageCreate) Validate() error {
	if c.URL == "" {
		return errors.New("url is required")
	}
	if c.Position == nil {
		return errors.New("position is required")
	}
	if c.Width == nil {
		return errors.New("width is required")
	}
	if c.Height == nil {
		return errors.New("height is required")
	}
	return nil
}

func (c MoodBoardImageCreate) Entity() MoodBoardImage {
	return MoodBoardImage{
		ID:       uuid.New().String(),
		URL:      c.URL,
		Position: *c.Position,
		Width:    *c.Width,
		Height:   *c.Height,
	}
}

type MoodBoardImageUpdate struct {
	URL      Optional[string]        `json:"url"`
	Position Optional[ImagePosition] `json:"position"`
	Width    Optional[float64]       `json:"width"`
	Height   Optional[float64]       `json:"height"`
}

func (u MoodBoardImageUpdate) Patch() map[string]any {
	patch := map[string]any{}
	put(patch, "url", u.URL)
	put(patch, "position", u.Position)
	put(patch, "width", u.Width)
	put(patch, "height", u.Height)
	return patch
}

type GalleryItem struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"` // "image" or "video"; not enforced server-side
	URL         string  `json:"url"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Date        string  `json:"date"`
}

func (g GalleryItem) DocID() string { return g.ID }

type GalleryItemCreate struct {
	Type        string  `json:"type"`
	URL         string  `json:"url"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Date        string  `json:"date"`
}

func (c GalleryItemCreate) Validate() error {
	if c.Type == "" {
		return errors.New("type is required")
	}
	if c.URL == "" {
		return errors.New("url is required")
	}
	if c.Title == "" {
		return errors.New("title is required")
	}
	if c.Date == "" {
		return errors.New("date is required")
	}
	return nil
}

func (c GalleryItemCreate) Entity() GalleryItem {
	return GalleryItem{
		ID:          uuid.New().String(),
		Type:        c.Type,
		URL:         c.URL,
		Title:       c.Title,
		Description: c.Description,
		Date:        c.Date,
	}
}
