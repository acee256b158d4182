package user

import (
	"context"
	"sort"
)

// Directory lists the accounts registered with the identity provider.
type Directory interface {
	ListUsers(ctx context.Context) ([]User, error)
}

// StaticDirectory serves a fixed set of users. The local server uses it when
// no user pool is configured.
type StaticDirectory struct {
	users []User
}

func NewStaticDirectory(users ...User) *StaticDirectory {
	sorted := append([]User(nil), users...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Username < sorted[j].Username })
	return &StaticDirectory{users: sorted}
}

func (d *StaticDirectory) ListUsers(_ context.Context) ([]User, error) {
	return append([]User(nil), d.users...), nil
}
