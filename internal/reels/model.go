package reels

import "time"

// Reel is one short video in the social feed.
type Reel struct {
	ID                    int64     `json:"id"`
	Restaurant            int64     `json:"restaurant"`
	RestaurantName        string    `json:"restaurant_name"`
	RestaurantAvatar      string    `json:"restaurant_avatar"`
	VideoURL              string    `json:"video_url"`
	Caption               string    `json:"caption"`
	LikesCount            int       `json:"likes_count"`
	CommentsCount         int       `json:"comments_count"`
	IsLiked               bool      `json:"is_liked"`
	IsFollowingRestaurant bool      `json:"is_following_restaurant"`
	FoodItemID            int64     `json:"food_item_id"`
	FoodItemName          string    `json:"food_item_name"`
	CreatedAt             time.Time `json:"created_at"`
}
