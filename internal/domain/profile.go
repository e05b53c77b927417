package domain

// DocTypeProfile is the partition discriminator for profile documents.
const DocTypeProfile = "profile"

// Profile holds a user's taste profile. Exactly one profile exists per user
// id; updates replace the document wholesale. Lists keep their order and are
// not deduplicated.
type Profile struct {
	UserID            string   `json:"user_id"`
	FavoriteDirectors []string `json:"favorite_directors"`
	Genres            []string `json:"genres"`
	FavoriteActors    []string `json:"favorite_actors"`
	FavoriteMovies    []string `json:"favorite_movies"`
	Type              string   `json:"type"`
}
