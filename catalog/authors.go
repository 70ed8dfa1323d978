package catalog

import (
	"context"

	"eureka/models"
)

// AuthorDirectory maps author names to display metadata. It is built once
// at startup and is read-only afterwards.
type AuthorDirectory struct {
	byName map[string]models.Author
	order  []string
}

// NewAuthorDirectory starts from the known authors and adds every user
// that is not already listed, using the user's profile fields.
func NewAuthorDirectory(authors []models.Author, users []models.User) *AuthorDirectory {
	d := &AuthorDirectory{
		byName: make(map[string]models.Author, len(authors)+len(users)),
		order:  []string{},
	}

	for _, a := range authors {
		d.add(a)
	}
	for _, u := range users {
		d.add(models.Author{
			Name:        u.Username,
			Description: u.Description,
			AvatarURL:   u.AvatarURL,
		})
	}

	return d
}

func (d *AuthorDirectory) add(a models.Author) {
	if a.Name == "" {
		return
	}
	if _, exists := d.byName[a.Name]; exists {
		return
	}
	d.byName[a.Name] = a
	d.order = append(d.order, a.Name)
}

func (d *AuthorDirectory) Lookup(name string) (models.Author, bool) {
	a, ok := d.byName[name]
	return a, ok
}

// List returns authors in the order they were added.
func (d *AuthorDirectory) List() []models.Author {
	out := make([]models.Author, 0, len(d.order))
	for _, name := range d.order {
		out = append(out, d.byName[name])
	}
	return out
}

func (d *AuthorDirectory) Len() int {
	return len(d.order)
}

// AuthorProfile returns the author's metadata with statistics over their
// projects. Authors who appear only on projects get a bare profile.
func (c *Catalog) AuthorProfile(ctx context.Context, name string) (*models.AuthorProfile, error) {
	projects, err := c.ProjectsByAuthor(ctx, name)
	if err != nil {
		return nil, err
	}

	author, ok := c.authors.Lookup(name)
	if !ok {
		if len(projects) == 0 {
			return nil, ErrAuthorNotFound
		}
		author = models.Author{Name: name}
	}

	profile := BuildAuthorProfile(author, projects)
	return &profile, nil
}
