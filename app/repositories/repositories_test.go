package repositories_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shashiranjanraj/rasoi/app/repositories"
)

// Repositories constructed with a nil collection prove the invalid-id guard
// fires before any store access: reaching the store would panic.

func TestDeleteByIDRejectsMalformedIDBeforeStoreAccess(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name string
		call func(id string) error
	}{
		{"users", func(id string) error {
			_, err := repositories.NewUserRepository(nil).DeleteByID(ctx, id)
			return err
		}},
		{"menu", func(id string) error {
			_, err := repositories.NewMenuRepository(nil).DeleteByID(ctx, id)
			return err
		}},
		{"carts", func(id string) error {
			_, err := repositories.NewCartRepository(nil).DeleteByID(ctx, id)
			return err
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, id := range []string{"", "nope", "zzzzzzzzzzzzzzzzzzzzzzzz", "abc123"} {
				if err := tc.call(id); !errors.Is(err, repositories.ErrInvalidID) {
					t.Errorf("id %q: err = %v, want ErrInvalidID", id, err)
				}
			}
		})
	}
}

func TestFindAndUpdateRejectMalformedID(t *testing.T) {
	ctx := context.Background()

	if _, err := repositories.NewMenuRepository(nil).FindByID(ctx, "bad"); !errors.Is(err, repositories.ErrInvalidID) {
		t.Errorf("FindByID err = %v, want ErrInvalidID", err)
	}
	if _, err := repositories.NewUserRepository(nil).PromoteToAdmin(ctx, "bad"); !errors.Is(err, repositories.ErrInvalidID) {
		t.Errorf("PromoteToAdmin err = %v, want ErrInvalidID", err)
	}
}

func TestParseIDs(t *testing.T) {
	valid := []string{"65f1a2b3c4d5e6f7a8b9c0d1", "65f1a2b3c4d5e6f7a8b9c0d2"}
	oids, err := repositories.ParseIDs(valid)
	if err != nil {
		t.Fatalf("ParseIDs: %v", err)
	}
	if len(oids) != 2 {
		t.Errorf("len = %d, want 2", len(oids))
	}

	if _, err := repositories.ParseIDs([]string{valid[0], "junk"}); !errors.Is(err, repositories.ErrInvalidID) {
		t.Errorf("err = %v, want ErrInvalidID on the first malformed id", err)
	}
}
