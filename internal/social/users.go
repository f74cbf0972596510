package social

import (
	"strings"

	"github.com/risusan11/eikenhub/internal/model"
	"github.com/risusan11/eikenhub/internal/store"
)

func profile(u model.User) model.Profile {
	return model.Profile{User: u, Level: model.CalcLevel(u.XP)}
}

// Register creates the profile on first sight and marks it online.
// Registering an existing name is a login, not an error.
func (s *Service) Register(name string) (model.Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Profile{}, ErrNameRequired
	}
	users := store.Load(s.store, docUsers, model.Users{})
	u, ok := users[name]
	if !ok {
		u = model.DefaultUser()
	}
	u.Status = "online"
	users[name] = u
	if err := store.Save(s.store, docUsers, users); err != nil {
		return model.Profile{}, err
	}
	return profile(u), nil
}

// Profile returns the user's profile, creating a default one if the
// name has never been seen.
func (s *Service) Profile(name string) (model.Profile, error) {
	if name == "" {
		return model.Profile{}, ErrNameRequired
	}
	users := store.Load(s.store, docUsers, model.Users{})
	u, ok := users[name]
	if !ok {
		u = model.DefaultUser()
		users[name] = u
		if err := store.Save(s.store, docUsers, users); err != nil {
			return model.Profile{}, err
		}
	}
	return profile(u), nil
}

// UpdateProfile sets the bio and, when non-empty, the status and icon
// path.
func (s *Service) UpdateProfile(name, bio, status, icon string) (model.Profile, error) {
	return s.mutateUser(name, func(u *model.User) {
		u.Bio = bio
		if status != "" {
			u.Status = status
		}
		if icon != "" {
			u.Icon = icon
		}
	})
}

// UpdateBanner sets the banner image path.
func (s *Service) UpdateBanner(name, banner string) (model.Profile, error) {
	return s.mutateUser(name, func(u *model.User) {
		u.Banner = banner
	})
}

// SetIcon switches the profile icon to one of the preset paths.
func (s *Service) SetIcon(name, icon string) (model.Profile, error) {
	return s.mutateUser(name, func(u *model.User) {
		u.Icon = icon
	})
}

func (s *Service) mutateUser(name string, fn func(*model.User)) (model.Profile, error) {
	if name == "" {
		return model.Profile{}, ErrNameRequired
	}
	users := store.Load(s.store, docUsers, model.Users{})
	u, ok := users[name]
	if !ok {
		u = model.DefaultUser()
	}
	fn(&u)
	users[name] = u
	if err := store.Save(s.store, docUsers, users); err != nil {
		return model.Profile{}, err
	}
	return profile(u), nil
}
