package main

import (
	"context"
	"log"
	"os"
	"time"

	"weddingdesk/internal/database"
	"weddingdesk/internal/domain"
	"weddingdesk/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "weddingdesk.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM notifications")
	db.Exec("DELETE FROM alert_settings")
	db.Exec("DELETE FROM event_suppliers")
	db.Exec("DELETE FROM events")
	db.Exec("DELETE FROM meetings")
	db.Exec("DELETE FROM recommended_suppliers")
	db.Exec("DELETE FROM users")

	ctx := context.Background()

	log.Println("Creating demo producer...")
	hash, _ := bcrypt.GenerateFromPassword([]byte("demo12345"), bcrypt.DefaultCost)
	producer := domain.User{
		Email:        "demo@weddingdesk.app",
		PasswordHash: string(hash),
		Name:         "Michal Producer",
		Phone:        "972501234567",
	}
	if err := db.Create(&producer).Error; err != nil {
		log.Fatal("creating producer failed:", err)
	}

	today := time.Now().Format("2006-01-02")
	nextMonth := time.Now().AddDate(0, 1, 0).Format("2006-01-02")

	log.Println("Creating meetings...")
	meetings := []domain.Meeting{
		{OwnerID: producer.ID, Date: today, Time: "09:00", CoupleName: "Noa & Yonatan", Location: "Cafe Greg, Rothschild"},
		{OwnerID: producer.ID, Date: today, Time: "14:00", CoupleName: "Dana & Omer", Location: "Office"},
		{OwnerID: producer.ID, Date: nextMonth, Time: "11:30", CoupleName: "Shir & Tom", Location: "Hall tour, Aurora"},
	}
	for i := range meetings {
		if err := db.Create(&meetings[i]).Error; err != nil {
			log.Fatal("creating meeting failed:", err)
		}
	}

	log.Println("Creating events...")
	guests := 250
	budget := 180000.0
	hours := 6.0
	total := 9000.0
	deposit := 2000.0
	balance := total - deposit
	eventRepo := repository.NewEventRepository(db)
	event := domain.Event{
		OwnerID:     producer.ID,
		CoupleName:  "Shir & Tom",
		WeddingDate: nextMonth,
		Hall:        "Hall Aurora",
		Address:     "Derech HaShalom 1, Tel Aviv",
		GuestCount:  &guests,
		Budget:      &budget,
		Notes:       "Chuppah at sunset, vegan menu for 20 guests",
		Suppliers: []domain.EventSupplier{
			{Role: "DJ", Name: "Amit Levi", Phone: "0521112233", Hours: &hours, TotalPayment: &total, Deposit: &deposit, Balance: &balance},
			{Role: "Catering", Name: "Tavlin", Phone: "0529998877"},
		},
	}
	if err := eventRepo.Create(ctx, &event); err != nil {
		log.Fatal("creating event failed:", err)
	}

	todayEvent := domain.Event{
		OwnerID:     producer.ID,
		CoupleName:  "Maya & Ido",
		WeddingDate: today,
		Hall:        "Gan HaPecan",
	}
	if err := eventRepo.Create(ctx, &todayEvent); err != nil {
		log.Fatal("creating event failed:", err)
	}

	log.Println("Creating recommended suppliers...")
	suppliers := []domain.RecommendedSupplier{
		{OwnerID: producer.ID, Role: "DJ", Name: "Amit Levi", Phone: "0521112233", Notes: "great with crowd energy"},
		{OwnerID: producer.ID, Role: "Photographer", Name: "Studio Or", Phone: "0534445566"},
		{OwnerID: producer.ID, Role: "Catering", Name: "Tavlin", Phone: "0529998877", Notes: "kosher, vegan options"},
	}
	for i := range suppliers {
		if err := db.Create(&suppliers[i]).Error; err != nil {
			log.Fatal("creating supplier failed:", err)
		}
	}

	log.Println("Creating alert settings...")
	settings := domain.AlertSettings{
		OwnerID: producer.ID,
		Phone:   "972501234567",
		Time:    "08:00",
	}
	if err := db.Create(&settings).Error; err != nil {
		log.Fatal("creating alert settings failed:", err)
	}

	log.Println("Seed complete. Login: demo@weddingdesk.app / demo12345")
}
