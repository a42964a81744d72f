package main

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Himanshur25/recipe-master/config"
	"github.com/Himanshur25/recipe-master/internal/database"
	"github.com/Himanshur25/recipe-master/internal/model"
)

var seedRecipes = []model.Recipe{
	{
		Title:       "Gatta Masala",
		Instruction: "Boil gram flour and make dumplings. Fry them. Prepare a spiced yogurt gravy and add gattas. Simmer and serve with roti.",
		Ingredient:  "Gram flour, Turmeric, Red chili powder, Coriander powder, Garam masala, Yogurt, Oil, Cumin seeds, Onion, Tomatoes, Salt, Coriander leaves",
		Category:    model.CategoryVeg,
	},
	{
		Title:       "Paneer Butter Masala",
		Instruction: "Fry paneer cubes. Prepare tomato-onion gravy with butter and cream. Add paneer and simmer for 10 minutes.",
		Ingredient:  "Paneer, Butter, Cream, Onion, Tomato, Ginger-garlic paste, Kasuri methi, Garam masala, Salt, Sugar",
		Category:    model.CategoryVeg,
	},
	{
		Title:       "Chicken Burger",
		Instruction: "Grill chicken patty with spices. Toast buns. Assemble burger with lettuce, tomato, onion, and mayonnaise. Serve hot.",
		Ingredient:  "Chicken patty, Burger buns, Lettuce, Tomato, Onion, Mayonnaise, Cheese slice, Salt, Pepper, Oil",
		Category:    model.CategoryNonVeg,
	},
	{
		Title:       "Aloo Gobi",
		Instruction: "Heat oil and add cumin seeds. Saute onions, ginger, and garlic. Add potatoes and cauliflower with spices. Cook until tender.",
		Ingredient:  "Potatoes, Cauliflower, Onion, Tomato, Ginger, Garlic, Cumin seeds, Turmeric, Coriander powder, Chili powder, Salt, Coriander leaves",
		Category:    model.CategoryVeg,
	},
	{
		Title:       "Margherita Pizza",
		Instruction: "Prepare pizza dough and spread tomato sauce. Add cheese and basil leaves. Bake in oven until crust is golden and cheese melts.",
		Ingredient:  "Pizza dough, Tomato sauce, Mozzarella cheese, Basil leaves, Olive oil, Salt, Oregano",
		Category:    model.CategoryVeg,
	},
	{
		Title:       "Butter Chicken",
		Instruction: "Marinate chicken in yogurt and spices. Grill and simmer in a buttery tomato gravy with cream. Serve with naan.",
		Ingredient:  "Chicken, Yogurt, Butter, Cream, Tomato, Ginger-garlic paste, Kasuri methi, Garam masala, Salt",
		Category:    model.CategoryNonVeg,
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	owner, err := seedUser(db)
	if err != nil {
		log.Fatalf("Failed to create seed user: %v", err)
	}

	created := 0
	for _, recipe := range seedRecipes {
		var existing model.Recipe
		err := db.Where("title = ? AND user_id = ?", recipe.Title, owner.ID).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("Failed to check existing recipe %q: %v", recipe.Title, err)
		}

		recipe.UserID = owner.ID
		if err := db.Create(&recipe).Error; err != nil {
			log.Fatalf("Failed to seed recipe %q: %v", recipe.Title, err)
		}
		created++
	}

	log.Printf("Seeded %d recipes for user %s", created, owner.Email)
}

func seedUser(db *gorm.DB) (*model.User, error) {
	const email = "seed@recipe-master.local"

	var user model.User
	err := db.Where("email = ?", email).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("seed-password"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user = model.User{
		Name:         "Seed User",
		Email:        email,
		PasswordHash: string(hashed),
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
