package seed

import (
	"fmt"
	"time"

	"socialmanager/internal/models"

	"github.com/brianvoe/gofakeit/v6"
)

// Factory builds fake drafts for demos and tests. A fixed seed gives the
// same sequence every run.
type Factory struct {
	faker *gofakeit.Faker
	now   time.Time
}

// NewFactory creates a Factory. Scheduled dates fall within 30 days of now.
func NewFactory(seed int64, now time.Time) *Factory {
	return &Factory{faker: gofakeit.New(seed), now: now.UTC()}
}

// Draft returns one random draft that passes the save guard.
func (f *Factory) Draft() models.Draft {
	d := models.NewDraft()
	d.Content = fmt.Sprintf("%s %s #%s", f.faker.Sentence(f.faker.Number(4, 12)), f.faker.Emoji(), f.faker.Word())

	count := f.faker.Number(1, len(models.AllPlatforms))
	start := f.faker.Number(0, len(models.AllPlatforms)-1)
	for i := 0; i < count; i++ {
		d.Platforms = append(d.Platforms, models.AllPlatforms[(start+i)%len(models.AllPlatforms)])
	}

	if f.faker.Bool() {
		when := f.faker.DateRange(f.now.Add(time.Hour), f.now.Add(30*24*time.Hour)).UTC().Truncate(time.Minute)
		d.ScheduledDate = &when
	}
	return d
}

// Drafts returns n drafts.
func (f *Factory) Drafts(n int) []models.Draft {
	out := make([]models.Draft, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, f.Draft())
	}
	return out
}

// Posts returns n posts built from drafts the way the authoring flow would:
// derived status, zero analytics, no ID.
func (f *Factory) Posts(n int) []*models.Post {
	out := make([]*models.Post, 0, n)
	for _, d := range f.Drafts(n) {
		out = append(out, &models.Post{
			Content:       d.Content,
			Platforms:     d.Platforms,
			Status:        models.DeriveStatus(d.ScheduledDate),
			ScheduledDate: d.ScheduledDate,
		})
	}
	return out
}
