package domain

// DocTypeMovie is the partition discriminator for catalog movie documents.
const DocTypeMovie = "movie"

// Movie is a denormalized snapshot copied wherever it is referenced — inside
// recommendations and inside recommender requests and responses. There is no
// foreign-key relationship back to the catalog; duplication is deliberate.
type Movie struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	ImdbRating   string   `json:"imdb_rating"`
	Stars        []string `json:"stars"`
	ImageURL     string   `json:"image_url"`
	ReleasedYear string   `json:"released_year"`
	Runtime      string   `json:"runtime"`
	Metadata     string   `json:"metadata"`
	Genres       []string `json:"genres"`
	Director     string   `json:"director"`
}
