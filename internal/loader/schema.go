package loader

// schemaDDL creates the star schema: four dimensions and one fact table
// referencing each of them. Idempotent, so every run can apply it.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS dim_product (
	product_id         TEXT PRIMARY KEY,
	product_name       TEXT NOT NULL,
	avg_product_rating REAL,
	price_usd          REAL NOT NULL,
	reviews_count      REAL,
	favorites_count    INTEGER,
	variations_count   INTEGER,
	category           TEXT
);

CREATE TABLE IF NOT EXISTS dim_brand (
	brand_id   INTEGER PRIMARY KEY,
	brand_name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS dim_reviewer (
	reviewer_id INTEGER PRIMARY KEY,
	skin_tone   TEXT NOT NULL,
	eye_color   TEXT NOT NULL,
	skin_type   TEXT NOT NULL,
	hair_color  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS dim_date (
	date_id TIMESTAMP PRIMARY KEY,
	year    INTEGER NOT NULL,
	month   INTEGER NOT NULL,
	day     INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS fact_reviews (
	review_id     INTEGER PRIMARY KEY,
	product_id    TEXT NOT NULL REFERENCES dim_product (product_id),
	brand_id      INTEGER NOT NULL REFERENCES dim_brand (brand_id),
	reviewer_id   INTEGER NOT NULL REFERENCES dim_reviewer (reviewer_id),
	date_id       TIMESTAMP NOT NULL REFERENCES dim_date (date_id),
	review_title  TEXT NOT NULL,
	review_text   TEXT NOT NULL,
	review_rating INTEGER
);
`

// truncateOrder empties the warehouse for a full-replace run: fact first so
// the dimension deletes never break a foreign key.
var truncateOrder = []string{
	"fact_reviews", "dim_product", "dim_brand", "dim_reviewer", "dim_date",
}

// Insert statements. Dimensions load before facts so every fact foreign key
// already resolves.
const (
	insertProduct = `INSERT INTO dim_product
		(product_id, product_name, avg_product_rating, price_usd,
		 reviews_count, favorites_count, variations_count, category)
		VALUES (:product_id, :product_name, :avg_product_rating, :price_usd,
		        :reviews_count, :favorites_count, :variations_count, :category)`

	insertBrand = `INSERT INTO dim_brand (brand_id, brand_name)
		VALUES (:brand_id, :brand_name)`

	insertReviewer = `INSERT INTO dim_reviewer
		(reviewer_id, skin_tone, eye_color, skin_type, hair_color)
		VALUES (:reviewer_id, :skin_tone, :eye_color, :skin_type, :hair_color)`

	insertDate = `INSERT INTO dim_date (date_id, year, month, day)
		VALUES (:date_id, :year, :month, :day)`

	insertFact = `INSERT INTO fact_reviews
		(review_id, product_id, brand_id, reviewer_id, date_id,
		 review_title, review_text, review_rating)
		VALUES (:review_id, :product_id, :brand_id, :reviewer_id, :date_id,
		        :review_title, :review_text, :review_rating)`
)
