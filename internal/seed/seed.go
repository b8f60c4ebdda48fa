package seed

import (
	"fmt"
	"sync"
	"time"

	"admindash_backend/internal/logger"
	"admindash_backend/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"gorm.io/gorm"
)

var subscriptionPlans = []struct {
	Plan  string
	Price float64
}{
	{"Basic", 9.99},
	{"Pro", 19.99},
	{"Premium", 39.99},
	{"Enterprise", 99.99},
}

var ticketTitles = []string{
	"Login Issues",
	"Payment Problem",
	"Feature Request",
	"Bug Report",
	"Account Suspension Appeal",
	"Billing Question",
	"Technical Support",
	"Password Reset Help",
	"Data Export Request",
	"Account Deletion Request",
}

// Summary reports how many rows a seed run created.
type Summary struct {
	Users         int
	Subscriptions int
	Tickets       int
}

// Seeder populates the database with demo data. A Seeder runs at most
// once; construct a new one to reseed.
type Seeder struct {
	db    *gorm.DB
	faker *gofakeit.Faker

	mu      sync.Mutex
	running bool
	done    bool
}

func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db, faker: gofakeit.New(0)}
}

// NewSeederWithSeed builds a Seeder with a fixed faker seed for
// reproducible data sets.
func NewSeederWithSeed(db *gorm.DB, seed uint64) *Seeder {
	return &Seeder{db: db, faker: gofakeit.New(seed)}
}

func (s *Seeder) Run() (*Summary, error) {
	s.mu.Lock()
	if s.running || s.done {
		s.mu.Unlock()
		logger.Info("Seed already running or completed, skipping")
		return &Summary{}, nil
	}
	s.running = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	logger.Info("Starting database seed")

	if err := s.clear(); err != nil {
		return nil, fmt.Errorf("failed to clear existing data: %w", err)
	}

	users, err := s.createUsers(50)
	if err != nil {
		return nil, err
	}
	logger.Info("Created users", "count", len(users))

	subscriptionCount, err := s.createSubscriptions(users)
	if err != nil {
		return nil, err
	}
	logger.Info("Created subscriptions", "count", subscriptionCount)

	ticketCount, err := s.createTickets(users)
	if err != nil {
		return nil, err
	}
	logger.Info("Created support tickets", "count", ticketCount)

	s.mu.Lock()
	s.done = true
	s.mu.Unlock()

	logger.Info("Database seeded successfully")
	return &Summary{
		Users:         len(users),
		Subscriptions: subscriptionCount,
		Tickets:       ticketCount,
	}, nil
}

// clear removes existing rows, children before parents.
func (s *Seeder) clear() error {
	session := s.db.Session(&gorm.Session{AllowGlobalUpdate: true})
	for _, model := range []interface{}{
		&models.SupportTicket{},
		&models.Subscription{},
		&models.ActivityLog{},
		&models.User{},
	} {
		if err := session.Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) createUsers(count int) ([]models.User, error) {
	now := time.Now()
	seen := make(map[string]struct{}, count)

	users := make([]models.User, 0, count)
	for i := 0; i < count; i++ {
		email := s.faker.Email()
		if _, ok := seen[email]; ok {
			email = fmt.Sprintf("%d.%s", i, email)
		}
		seen[email] = struct{}{}

		role := models.UserRoleUser
		if i < 5 {
			role = models.UserRoleAdmin
		}

		user := models.User{
			Email:  email,
			Role:   role,
			Status: models.UserStatus(s.weighted([]string{"ACTIVE", "SUSPENDED"}, []float32{0.9, 0.1})),
		}
		if s.chance(0.8) {
			lastLogin := s.faker.DateRange(now.Add(-30*24*time.Hour), now)
			user.LastLogin = &lastLogin
		}

		if err := s.db.Create(&user).Error; err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		users = append(users, user)
	}
	return users, nil
}

func (s *Seeder) createSubscriptions(users []models.User) (int, error) {
	now := time.Now()

	count := 0
	for _, user := range users {
		if !s.chance(0.7) {
			continue
		}
		selected := subscriptionPlans[s.faker.Number(0, len(subscriptionPlans)-1)]
		subscription := models.Subscription{
			UserID: user.ID,
			Plan:   selected.Plan,
			Price:  selected.Price,
			Status: models.SubscriptionStatus(s.weighted(
				[]string{"ACTIVE", "CANCELED", "FAILED"},
				[]float32{0.85, 0.10, 0.05},
			)),
		}
		subscription.CreatedAt = s.faker.DateRange(now.Add(-365*24*time.Hour), now)

		if err := s.db.Create(&subscription).Error; err != nil {
			return count, fmt.Errorf("failed to create subscription: %w", err)
		}
		count++
	}
	return count, nil
}

func (s *Seeder) createTickets(users []models.User) (int, error) {
	now := time.Now()

	count := 0
	for _, user := range users {
		if !s.chance(0.3) {
			continue
		}
		ticket := models.SupportTicket{
			UserID: user.ID,
			Title:  s.faker.RandomString(ticketTitles),
			Status: models.TicketStatus(s.weighted(
				[]string{"OPEN", "RESOLVED"},
				[]float32{0.3, 0.7},
			)),
			Priority: models.TicketPriority(s.weighted(
				[]string{"LOW", "MEDIUM", "HIGH", "URGENT"},
				[]float32{0.4, 0.4, 0.15, 0.05},
			)),
		}
		ticket.CreatedAt = s.faker.DateRange(now.Add(-90*24*time.Hour), now)

		if err := s.db.Create(&ticket).Error; err != nil {
			return count, fmt.Errorf("failed to create support ticket: %w", err)
		}
		count++
	}
	return count, nil
}

func (s *Seeder) chance(probability float64) bool {
	return s.faker.Float64Range(0, 1) < probability
}

func (s *Seeder) weighted(options []string, weights []float32) string {
	values := make([]interface{}, len(options))
	for i, option := range options {
		values[i] = option
	}
	picked, err := s.faker.Weighted(values, weights)
	if err != nil {
		return options[0]
	}
	return picked.(string)
}
