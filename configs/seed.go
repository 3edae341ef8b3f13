package configs

import (
	"log"

	"littlelemon/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedGroups makes sure the two role groups exist.
func SeedGroups() error {
	db := DB()
	for _, name := range []string{entity.GroupManager, entity.GroupDeliveryCrew} {
		if err := db.FirstOrCreate(&entity.Group{}, entity.Group{Name: name}).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedAdmin creates the staff account on first boot.
func SeedAdmin(email, pass string) error {
	db := DB()
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		IsStaff:   true,
	}
	return db.Create(&admin).Error
}

// SeedMenu loads the starter catalogue. Menu management has no HTTP
// surface, so the catalogue lives here.
func SeedMenu() error {
	db := DB()

	categories := []entity.Category{
		{Slug: "mains", Title: "Mains"},
		{Slug: "starters", Title: "Starters"},
		{Slug: "desserts", Title: "Desserts"},
		{Slug: "drinks", Title: "Drinks"},
	}
	for i := range categories {
		if err := db.Where(entity.Category{Slug: categories[i].Slug}).
			FirstOrCreate(&categories[i]).Error; err != nil {
			return err
		}
	}

	byCategory := map[string][]entity.MenuItem{
		"mains": {
			{Title: "Lemon Herb Chicken", Price: 1450, Featured: true},
			{Title: "Grilled Salmon", Price: 1800},
			{Title: "Pasta Primavera", Price: 1250},
		},
		"starters": {
			{Title: "Bruschetta", Price: 650},
			{Title: "Greek Salad", Price: 700, Featured: true},
		},
		"desserts": {
			{Title: "Lemon Tart", Price: 550, Featured: true},
			{Title: "Baklava", Price: 500},
		},
		"drinks": {
			{Title: "Fresh Lemonade", Price: 350},
			{Title: "Espresso", Price: 300},
		},
	}
	for slug, items := range byCategory {
		var cat entity.Category
		if err := db.Where("slug = ?", slug).First(&cat).Error; err != nil {
			return err
		}
		for _, item := range items {
			item.CategoryID = cat.ID
			if err := db.Where(entity.MenuItem{Title: item.Title, CategoryID: cat.ID}).
				FirstOrCreate(&item).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
