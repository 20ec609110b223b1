// ABOUTME: Export functionality for seeded data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/erkannt/rechenschaftspflicht-seed/internal/models"
)

// ExportData represents the full export format for the store.
type ExportData struct {
	Version    string         `json:"version" yaml:"version"`
	ExportedAt time.Time      `json:"exported_at" yaml:"exported_at"`
	Tool       string         `json:"tool" yaml:"tool"`
	Users      []*models.User `json:"users" yaml:"users"`
	Events     []*EventEntry  `json:"events" yaml:"events"`
}

// GetAllData retrieves all users and events for export.
func (d *DB) GetAllData(ctx context.Context) (*ExportData, error) {
	users, err := d.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	events, err := d.ListEvents(ctx, EventFilter{})
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	return &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "seed",
		Users:      users,
		Events:     events,
	}, nil
}

// ExportJSON exports all data as JSON.
func (d *DB) ExportJSON(ctx context.Context) ([]byte, error) {
	data, err := d.GetAllData(ctx)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports all data as YAML with events grouped by tag.
func (d *DB) ExportYAML(ctx context.Context) ([]byte, error) {
	data, err := d.GetAllData(ctx)
	if err != nil {
		return nil, err
	}

	yamlData := struct {
		Version    string                 `yaml:"version"`
		ExportedAt string                 `yaml:"exported_at"`
		Tool       string                 `yaml:"tool"`
		Users      []yamlUser             `yaml:"users"`
		Events     map[string][]yamlEvent `yaml:"events"`
	}{
		Version:    data.Version,
		ExportedAt: data.ExportedAt.Format(time.RFC3339),
		Tool:       data.Tool,
		Users:      make([]yamlUser, 0, len(data.Users)),
		Events:     make(map[string][]yamlEvent),
	}

	for _, u := range data.Users {
		yamlData.Users = append(yamlData.Users, yamlUser{
			ID:       u.ID,
			Username: u.Username,
			Email:    u.Email,
		})
	}

	for _, e := range data.Events {
		tag := string(e.Tag)
		yamlData.Events[tag] = append(yamlData.Events[tag], yamlEvent{
			ID:         e.ID,
			Value:      e.Value,
			Comment:    e.Comment,
			RecordedAt: e.RecordedAt,
			RecordedBy: e.RecordedBy,
		})
	}

	return yaml.Marshal(yamlData)
}

type yamlUser struct {
	ID       int64  `yaml:"id"`
	Username string `yaml:"username"`
	Email    string `yaml:"email"`
}

type yamlEvent struct {
	ID         int64  `yaml:"id"`
	Value      string `yaml:"value,omitempty"`
	Comment    string `yaml:"comment,omitempty"`
	RecordedAt string `yaml:"recorded_at"`
	RecordedBy string `yaml:"recorded_by"`
}

// ExportMarkdown exports events as Markdown tables, one per tag. A non-nil tag
// restricts the export to that tag.
func (d *DB) ExportMarkdown(ctx context.Context, tag *models.Tag) (string, error) {
	events, err := d.ListEvents(ctx, EventFilter{Tag: tag})
	if err != nil {
		return "", err
	}

	grouped := make(map[models.Tag][]*EventEntry)
	for _, e := range events {
		grouped[e.Tag] = append(grouped[e.Tag], e)
	}

	var sb strings.Builder
	now := time.Now()

	sb.WriteString(fmt.Sprintf("# Seed Export - %s\n\n", now.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", now.Format(time.RFC3339)))

	// Known tags first in vocabulary order, then anything else other writers left.
	var extra []models.Tag
	for t := range grouped {
		if !models.IsValidTag(string(t)) {
			extra = append(extra, t)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	order := append(append([]models.Tag{}, models.AllTags...), extra...)

	for _, t := range order {
		rows := grouped[t]
		if len(rows) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("## %s\n\n", t))
		sb.WriteString("| Date | User | Value | Comment |\n")
		sb.WriteString("|------|------|-------|---------|\n")
		for _, e := range rows {
			who := e.Username
			if who == "" {
				who = e.RecordedBy
			}
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n",
				e.RecordedAt, who, e.Value, e.Comment))
		}
		sb.WriteString("\n")
	}

	return sb.String(), nil
}
