package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// Platform names a target social network.
type Platform string

const (
	PlatformFacebook  Platform = "facebook"
	PlatformInstagram Platform = "instagram"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformTwitter   Platform = "twitter"
)

// AllPlatforms lists the supported platforms in display order.
var AllPlatforms = []Platform{
	PlatformFacebook,
	PlatformInstagram,
	PlatformLinkedIn,
	PlatformTwitter,
}

// Valid reports whether p is one of the supported platforms.
func (p Platform) Valid() bool {
	switch p {
	case PlatformFacebook, PlatformInstagram, PlatformLinkedIn, PlatformTwitter:
		return true
	}
	return false
}

// ParsePlatform normalizes and validates a platform tag.
func ParsePlatform(raw string) (Platform, error) {
	p := Platform(strings.ToLower(strings.TrimSpace(raw)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownPlatform, raw)
	}
	return p, nil
}

// Platforms is an ordered set of platform tags. Insertion order is kept for
// display; membership checks ignore order.
type Platforms []Platform

// Contains reports whether p is in the set.
func (ps Platforms) Contains(p Platform) bool {
	for _, existing := range ps {
		if existing == p {
			return true
		}
	}
	return false
}

// Toggle returns a new set with p removed if present, or appended if absent.
func (ps Platforms) Toggle(p Platform) Platforms {
	out := make(Platforms, 0, len(ps)+1)
	found := false
	for _, existing := range ps {
		if existing == p {
			found = true
			continue
		}
		out = append(out, existing)
	}
	if !found {
		out = append(out, p)
	}
	return out
}

// Clone returns an independent copy.
func (ps Platforms) Clone() Platforms {
	if ps == nil {
		return nil
	}
	out := make(Platforms, len(ps))
	copy(out, ps)
	return out
}

// Strings returns the tags as plain strings.
func (ps Platforms) Strings() []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = string(p)
	}
	return out
}

// ParsePlatforms validates a list of raw tags, dropping duplicates while
// keeping first-seen order.
func ParsePlatforms(raw []string) (Platforms, error) {
	out := make(Platforms, 0, len(raw))
	for _, r := range raw {
		p, err := ParsePlatform(r)
		if err != nil {
			return nil, err
		}
		if !out.Contains(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

// Value stores the set as a comma-separated column.
func (ps Platforms) Value() (driver.Value, error) {
	return strings.Join(ps.Strings(), ","), nil
}

// Scan reads a comma-separated column back into the set.
func (ps *Platforms) Scan(src any) error {
	var raw string
	switch v := src.(type) {
	case nil:
		*ps = Platforms{}
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("platforms: unsupported column type %T", src)
	}

	out := Platforms{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, Platform(part))
	}
	*ps = out
	return nil
}

// GormDataType tells GORM which column type to migrate.
func (Platforms) GormDataType() string {
	return "text"
}
