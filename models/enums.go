package models

import (
	"fmt"
	"strings"
)

// enumName pairs the wire slug of an enum value with its display label.
type enumName struct {
	slug  string
	label string
}

func lookupEnum(names []enumName, s string) (int, bool) {
	s = strings.TrimSpace(s)
	for i, n := range names {
		if i == 0 {
			continue
		}
		if strings.EqualFold(s, n.slug) || strings.EqualFold(s, n.label) {
			return i, true
		}
	}
	return 0, false
}

// Status is the review lifecycle state of a project. The order of the
// constants is the order a project moves through review.
type Status int

const (
	StatusUploaded Status = iota + 1
	StatusInReview
	StatusApproved
)

var statusNames = []enumName{
	{},
	{slug: "uploaded", label: "Proyecto Subido"},
	{slug: "in_review", label: "En Revisión"},
	{slug: "approved", label: "Aprobado"},
}

// Statuses lists every status in lifecycle order.
var Statuses = []Status{StatusUploaded, StatusInReview, StatusApproved}

// ParseStatus accepts either the slug or the display label.
func ParseStatus(s string) (Status, bool) {
	i, ok := lookupEnum(statusNames, s)
	return Status(i), ok
}

func (s Status) Valid() bool {
	switch s {
	case StatusUploaded, StatusInReview, StatusApproved:
		return true
	}
	return false
}

func (s Status) String() string {
	if !s.Valid() {
		return ""
	}
	return statusNames[s].slug
}

func (s Status) Label() string {
	if !s.Valid() {
		return ""
	}
	return statusNames[s].label
}

// Pending reports whether the project still waits for an admin decision.
func (s Status) Pending() bool {
	switch s {
	case StatusUploaded, StatusInReview:
		return true
	case StatusApproved:
		return false
	}
	return false
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(b []byte) error {
	v, ok := ParseStatus(string(b))
	if !ok {
		return fmt.Errorf("unknown status %q", string(b))
	}
	*s = v
	return nil
}

// Category is the academic area a project belongs to. The zero value means
// no category was selected.
type Category int

const (
	CategoryTechnology Category = iota + 1
	CategoryDevelopment
	CategoryEngineering
)

var categoryNames = []enumName{
	{},
	{slug: "technology", label: "Tecnología"},
	{slug: "development", label: "Desarrollo"},
	{slug: "engineering", label: "Ingeniería General"},
}

var Categories = []Category{CategoryTechnology, CategoryDevelopment, CategoryEngineering}

func ParseCategory(s string) (Category, bool) {
	i, ok := lookupEnum(categoryNames, s)
	return Category(i), ok
}

func (c Category) Valid() bool {
	switch c {
	case CategoryTechnology, CategoryDevelopment, CategoryEngineering:
		return true
	}
	return false
}

func (c Category) String() string {
	if !c.Valid() {
		return ""
	}
	return categoryNames[c].slug
}

func (c Category) Label() string {
	if !c.Valid() {
		return ""
	}
	return categoryNames[c].label
}

// ShortLabel is the label used on dashboard charts.
func (c Category) ShortLabel() string {
	return strings.TrimSuffix(c.Label(), " General")
}

func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(b []byte) error {
	v, ok := ParseCategory(string(b))
	if !ok {
		return fmt.Errorf("unknown category %q", string(b))
	}
	*c = v
	return nil
}

// Campus is the university site a project was submitted from. The zero
// value means no campus was selected.
type Campus int

const (
	CampusLima Campus = iota + 1
	CampusArequipa
	CampusCusco
	CampusTrujillo
	CampusPiura
	CampusChiclayo
)

var campusNames = []enumName{
	{},
	{slug: "lima", label: "Sede Lima"},
	{slug: "arequipa", label: "Sede Arequipa"},
	{slug: "cusco", label: "Sede Cusco"},
	{slug: "trujillo", label: "Sede Trujillo"},
	{slug: "piura", label: "Sede Piura"},
	{slug: "chiclayo", label: "Sede Chiclayo"},
}

var Campuses = []Campus{CampusLima, CampusArequipa, CampusCusco, CampusTrujillo, CampusPiura, CampusChiclayo}

func ParseCampus(s string) (Campus, bool) {
	i, ok := lookupEnum(campusNames, s)
	return Campus(i), ok
}

func (c Campus) Valid() bool {
	switch c {
	case CampusLima, CampusArequipa, CampusCusco, CampusTrujillo, CampusPiura, CampusChiclayo:
		return true
	}
	return false
}

func (c Campus) String() string {
	if !c.Valid() {
		return ""
	}
	return campusNames[c].slug
}

func (c Campus) Label() string {
	if !c.Valid() {
		return ""
	}
	return campusNames[c].label
}

func (c Campus) ShortLabel() string {
	return strings.TrimPrefix(c.Label(), "Sede ")
}

func (c Campus) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Campus) UnmarshalText(b []byte) error {
	v, ok := ParseCampus(string(b))
	if !ok {
		return fmt.Errorf("unknown campus %q", string(b))
	}
	*c = v
	return nil
}

// Role separates administrators from regular students.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
)

func ParseRole(s string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "admin":
		return RoleAdmin, true
	case "student":
		return RoleStudent, true
	}
	return "", false
}
