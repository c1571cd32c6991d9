package user

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// AddFavorite saves a professional to the user's favorites. Adding an already
// saved professional is a no-op.
func (s *DefaultUserService) AddFavorite(id, professionalID string) error {
	u, err := s.GetByID(id)
	if err != nil {
		return err
	}
	for _, fav := range u.Favorites {
		if fav == professionalID {
			return nil
		}
	}
	favorites := append(u.Favorites, professionalID)
	return s.Repo.UpdateSetDocument(id, bson.M{"favorites": favorites, "updatedAt": time.Now()})
}

// RemoveFavorite drops a professional from the user's favorites.
func (s *DefaultUserService) RemoveFavorite(id, professionalID string) error {
	u, err := s.GetByID(id)
	if err != nil {
		return err
	}
	favorites := make([]string, 0, len(u.Favorites))
	for _, fav := range u.Favorites {
		if fav != professionalID {
			favorites = append(favorites, fav)
		}
	}
	return s.Repo.UpdateSetDocument(id, bson.M{"favorites": favorites, "updatedAt": time.Now()})
}

// ListFavorites returns the ids of the user's saved professionals.
func (s *DefaultUserService) ListFavorites(id string) ([]string, error) {
	u, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	return u.Favorites, nil
}
