package seed

import (
	"Savoria-Backend/entities"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type seedFood struct {
	Name        string
	Price       float64
	Description string
}

var menuData = map[string]struct {
	Description string
	Foods       []seedFood
}{
	"Appetizers": {
		Description: "Start your meal with our delicious appetizers",
		Foods: []seedFood{
			{"Buffalo Wings", 12.99, "Crispy chicken wings tossed in spicy buffalo sauce, served with celery and blue cheese dip"},
			{"Mozzarella Sticks", 8.99, "Golden fried mozzarella cheese sticks served with marinara sauce"},
			{"Loaded Nachos", 14.99, "Crispy tortilla chips topped with cheese, jalapenos, sour cream, and guacamole"},
			{"Garlic Bread", 6.99, "Fresh baked bread with garlic butter and herbs"},
		},
	},
	"Main Courses": {
		Description: "Hearty and satisfying main dishes",
		Foods: []seedFood{
			{"Classic Cheeseburger", 16.99, "Juicy beef patty with cheese, lettuce, tomato, and pickles on a brioche bun"},
			{"Grilled Chicken Breast", 18.99, "Seasoned grilled chicken breast served with roasted vegetables and mashed potatoes"},
			{"Fish and Chips", 17.99, "Beer-battered cod served with crispy fries and tartar sauce"},
			{"Spaghetti Carbonara", 15.99, "Classic Italian pasta with bacon, eggs, parmesan cheese, and black pepper"},
			{"BBQ Ribs", 22.99, "Tender pork ribs glazed with our signature BBQ sauce, served with coleslaw"},
			{"Vegetarian Pizza", 14.99, "Wood-fired pizza with fresh vegetables, mozzarella, and basil"},
		},
	},
	"Salads": {
		Description: "Fresh and healthy salad options",
		Foods: []seedFood{
			{"Caesar Salad", 11.99, "Crisp romaine lettuce with parmesan cheese, croutons, and Caesar dressing"},
			{"Greek Salad", 12.99, "Mixed greens with feta cheese, olives, tomatoes, and Greek dressing"},
			{"Chicken Cobb Salad", 15.99, "Grilled chicken, bacon, blue cheese, avocado, and hard-boiled egg over mixed greens"},
		},
	},
	"Desserts": {
		Description: "Sweet treats to end your meal",
		Foods: []seedFood{
			{"Chocolate Cake", 7.99, "Rich chocolate layer cake with chocolate frosting"},
			{"Cheesecake", 6.99, "Creamy New York style cheesecake with berry compote"},
			{"Ice Cream Sundae", 5.99, "Vanilla ice cream with chocolate sauce, whipped cream, and cherry"},
			{"Apple Pie", 6.99, "Homemade apple pie with cinnamon and a flaky crust, served warm"},
		},
	},
	"Beverages": {
		Description: "Refreshing drinks and beverages",
		Foods: []seedFood{
			{"Coca Cola", 2.99, "Classic Coca Cola soft drink"},
			{"Fresh Orange Juice", 4.99, "Freshly squeezed orange juice"},
			{"Coffee", 3.99, "Freshly brewed coffee, regular or decaf"},
			{"Iced Tea", 2.99, "Refreshing iced tea, sweetened or unsweetened"},
			{"Milkshake", 5.99, "Thick and creamy milkshake - vanilla, chocolate, or strawberry"},
		},
	},
}

// SeedMenu fills the menu tables with sample data. Existing rows are kept,
// so running it twice is safe.
func SeedMenu(db *gorm.DB) error {
	for name, data := range menuData {
		category := entities.Category{}
		err := db.Where(entities.Category{Name: name}).
			Attrs(entities.Category{ID: uuid.New(), Description: data.Description}).
			FirstOrCreate(&category).Error
		if err != nil {
			return fmt.Errorf("seeding category %s: %w", name, err)
		}

		for _, f := range data.Foods {
			food := entities.Food{}
			err := db.Where(entities.Food{Name: f.Name, CategoryID: category.ID}).
				Attrs(entities.Food{
					ID:          uuid.New(),
					Price:       f.Price,
					Description: f.Description,
					IsAvailable: true,
				}).
				FirstOrCreate(&food).Error
			if err != nil {
				return fmt.Errorf("seeding food %s: %w", f.Name, err)
			}
		}
	}

	fmt.Println("Menu seeding complete")
	return nil
}
