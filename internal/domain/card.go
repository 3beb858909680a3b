package domain

import "time"

// UploadedCard is a card document in the uploadedCards collection. Its
// numeric ID comes from the counters collection, not from the ObjectID, so
// the mobile app can show short human-readable card numbers.
type UploadedCard struct {
	ID        int64     `bson:"id"`
	Category  Category  `bson:"category"`
	CardName  string    `bson:"card_name"`
	Rarity    string    `bson:"rarity"`
	Language  string    `bson:"language"`
	Set       string    `bson:"set"`
	CardNum   string    `bson:"card_num"`
	CreatedAt time.Time `bson:"createdAt"`
}
