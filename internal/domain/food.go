package domain

type Food struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	ImageURL      string  `json:"imageUrl,omitempty"`
	CategoryID    int     `json:"foodCategoryId"`
	CategoryName  string  `json:"foodCategoryName,omitempty"`
	Calories      float64 `json:"calories"`
	Protein       float64 `json:"protein"`
	Carbohydrates float64 `json:"carbohydrates"`
	Fat           float64 `json:"fat"`
	ServingSize   string  `json:"servingSize,omitempty"`
	Status        string  `json:"status,omitempty"`
	Tags          []Tag   `json:"tags,omitempty"`
}

type FoodInput struct {
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	ImageURL      string  `json:"imageUrl,omitempty"`
	CategoryID    int     `json:"foodCategoryId"`
	Calories      float64 `json:"calories"`
	Protein       float64 `json:"protein"`
	Carbohydrates float64 `json:"carbohydrates"`
	Fat           float64 `json:"fat"`
	ServingSize   string  `json:"servingSize,omitempty"`
	TagIDs        []int   `json:"tagIds,omitempty"`
}

type FoodCategory struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
}

type FoodCategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
}

type Tag struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type TagInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
