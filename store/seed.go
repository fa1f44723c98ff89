package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrewpaige1/flasheng-api/models"
)

type seedWord struct {
	Word        string
	Translation string
}

type seedCategory struct {
	Name        string
	Description string
	Color       string
	Words       []seedWord
}

var defaultData = []seedCategory{
	{"Basic Verbs", "Essential English verbs for everyday communication", "#3B82F6", []seedWord{
		{"To be", "бути"}, {"To have", "мати"}, {"To go", "йти, їхати"}, {"To do", "робити"},
		{"To make", "робити, створювати"}, {"To get", "отримувати, ставати"}, {"To see", "бачити"},
		{"To come", "приходити"}, {"To think", "думати"}, {"To take", "брати"},
	}},
	{"Common Adjectives", "Most frequently used adjectives in English", "#8B5CF6", []seedWord{
		{"Good", "хороший, добрий"}, {"Bad", "поганий"}, {"Big", "великий"}, {"Small", "малий, маленький"},
		{"New", "новий"}, {"Old", "старий"}, {"Happy", "щасливий"}, {"Sad", "сумний"},
		{"Easy", "легкий, простий"}, {"Difficult", "важкий, складний"},
	}},
	{"Daily Routines", "Words and phrases for describing your daily activities", "#10B981", []seedWord{
		{"Wake up", "прокидатися"}, {"Get up", "вставати"}, {"Breakfast", "сніданок"}, {"Lunch", "обід"},
		{"Dinner", "вечеря"}, {"Sleep", "спати"}, {"Work", "працювати, робота"}, {"Study", "вчитися, навчатися"},
		{"Rest", "відпочивати"}, {"Exercise", "тренуватися, вправи"},
	}},
	{"Food & Drinks", "Essential vocabulary for food and beverages", "#F59E0B", []seedWord{
		{"Water", "вода"}, {"Bread", "хліб"}, {"Milk", "молоко"}, {"Coffee", "кава"}, {"Tea", "чай"},
		{"Apple", "яблуко"}, {"Banana", "банан"}, {"Rice", "рис"}, {"Chicken", "курка, куряче м'ясо"},
		{"Fish", "риба"},
	}},
	{"Family Members", "Words for talking about your family", "#EC4899", []seedWord{
		{"Mother", "мати, мама"}, {"Father", "батько, тато"}, {"Sister", "сестра"}, {"Brother", "брат"},
		{"Son", "син"}, {"Daughter", "дочка"}, {"Grandmother", "бабуся"}, {"Grandfather", "дідусь"},
		{"Uncle", "дядько"}, {"Aunt", "тітка"},
	}},
	{"Weather", "Vocabulary for describing weather conditions", "#06B6D4", []seedWord{
		{"Sun", "сонце"}, {"Rain", "дощ"}, {"Snow", "сніг"}, {"Wind", "вітер"}, {"Cloud", "хмара"},
		{"Hot", "спекотний, гарячий"}, {"Cold", "холодний"}, {"Warm", "теплий"}, {"Cool", "прохолодний"},
		{"Storm", "буря, шторм"},
	}},
	{"Colors", "Basic colors in English", "#EF4444", []seedWord{
		{"Red", "червоний"}, {"Blue", "синій, блакитний"}, {"Green", "зелений"}, {"Yellow", "жовтий"},
		{"Black", "чорний"}, {"White", "білий"}, {"Brown", "коричневий"}, {"Orange", "помаранчевий"},
		{"Purple", "фіолетовий"}, {"Pink", "рожевий"},
	}},
	{"Numbers", "Numbers from one to ten", "#6366F1", []seedWord{
		{"One", "один"}, {"Two", "два"}, {"Three", "три"}, {"Four", "чотири"}, {"Five", "п'ять"},
		{"Six", "шість"}, {"Seven", "сім"}, {"Eight", "вісім"}, {"Nine", "дев'ять"}, {"Ten", "десять"},
	}},
	{"Time", "Words related to time and periods", "#14B8A6", []seedWord{
		{"Hour", "година"}, {"Minute", "хвилина"}, {"Second", "секунда"}, {"Day", "день"},
		{"Week", "тиждень"}, {"Month", "місяць"}, {"Year", "рік"}, {"Morning", "ранок"},
		{"Evening", "вечір"}, {"Night", "ніч"},
	}},
	{"Transport", "Different types of transportation", "#F97316", []seedWord{
		{"Car", "автомобіль, машина"}, {"Bus", "автобус"}, {"Train", "поїзд"}, {"Plane", "літак"},
		{"Bike", "велосипед"}, {"Boat", "човен"}, {"Ship", "корабель"}, {"Taxi", "таксі"},
		{"Metro", "метро"}, {"Tram", "трамвай"},
	}},
}

// SeedResult reports what SeedDefaults inserted.
type SeedResult struct {
	Categories int
	Flashcards int
}

// SeedDefaults inserts the shared default categories and flashcards unless a
// default category already exists.
func (s *Store) SeedDefaults(ctx context.Context) (SeedResult, error) {
	var result SeedResult

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&models.Category{}).Where("is_default = ?", true).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return nil
		}

		for _, data := range defaultData {
			category := models.Category{
				UserID:      models.SystemOwner,
				Name:        data.Name,
				Description: data.Description,
				Color:       data.Color,
				IsDefault:   true,
			}
			if err := tx.Create(&category).Error; err != nil {
				return err
			}
			result.Categories++

			cards := make([]models.Flashcard, 0, len(data.Words))
			for _, w := range data.Words {
				cards = append(cards, models.Flashcard{
					UserID:      models.SystemOwner,
					CategoryID:  category.ID,
					Word:        w.Word,
					Translation: w.Translation,
					Difficulty:  models.DifficultyMedium,
					IsDefault:   true,
				})
			}
			if err := tx.Create(&cards).Error; err != nil {
				return err
			}
			result.Flashcards += len(cards)
		}
		return nil
	})
	if err != nil {
		return SeedResult{}, fmt.Errorf("seed defaults: %w", err)
	}
	return result, nil
}
