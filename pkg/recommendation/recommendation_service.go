package recommendation

import (
	"context"
	"math/rand"
	"time"

	"meal-planner/domain"
	"meal-planner/internal/utils"
	"meal-planner/pkg/food"
)

const maxAlternativeCount = 20

type (
	CatalogProvider interface {
		GetCatalog(ctx context.Context) ([]domain.Food, error)
	}

	ProfileProvider interface {
		GetProfile(ctx context.Context, userID string) (domain.Profile, error)
	}

	HistoryStore interface {
		GetHistory(ctx context.Context, userID string) (domain.History, error)
		LogMeals(ctx context.Context, userID string, reqs []domain.LogMealRequest) ([]domain.MealResponse, error)
	}

	PlanMailer interface {
		SendDailyPlan(toEmail, name string, plan domain.DailyPlanResponse) error
	}

	// Config controls how engines are built for each request. RandomTopN
	// above 1 turns on the random tie-break; a zero RandomSeed seeds from
	// the clock.
	Config struct {
		Policy       Policy
		IncludeSnack bool
		RandomTopN   int
		RandomSeed   int64
	}

	RecommendationService interface {
		GenerateDailyPlan(ctx context.Context, userID string, req domain.DailyPlanRequest) (domain.DailyPlanResponse, error)
		RecommendMeal(ctx context.Context, userID string, req domain.MealRecommendationRequest) (domain.RecommendedMeal, error)
		GetAlternatives(ctx context.Context, userID, foodID string, count int) ([]domain.FoodItemResponse, error)
		AcceptPlan(ctx context.Context, userID string, req domain.AcceptPlanRequest) ([]domain.MealResponse, error)
		CheckBalance(ctx context.Context, req domain.BalanceCheckRequest) (domain.BalanceCheckResponse, error)
		EmailDailyPlan(ctx context.Context, userID, toEmail, name, date string) error
	}

	recommendationService struct {
		catalog  CatalogProvider
		profiles ProfileProvider
		history  HistoryStore
		mailer   PlanMailer
		config   Config
	}
)

func ConfigFromEnv() Config {
	return Config{
		Policy:       DefaultPolicy(),
		IncludeSnack: utils.GetConfigBool("PLAN_INCLUDE_SNACK"),
		RandomTopN:   utils.GetConfigInt("PLAN_RANDOM_TOP_N", 1),
		RandomSeed:   int64(utils.GetConfigInt("PLAN_RANDOM_SEED", 0)),
	}
}

func NewRecommendationService(
	catalog CatalogProvider,
	profiles ProfileProvider,
	history HistoryStore,
	mailer PlanMailer,
	config Config,
) RecommendationService {
	if config.Policy.MealTypes == nil {
		config.Policy = DefaultPolicy()
	}
	return &recommendationService{
		catalog:  catalog,
		profiles: profiles,
		history:  history,
		mailer:   mailer,
		config:   config,
	}
}

// newEngine builds a fresh engine per call; engines with a random source are
// not safe to share between requests.
func (s *recommendationService) newEngine(includeSnack bool) *Engine {
	policy := s.config.Policy
	if includeSnack || s.config.IncludeSnack {
		policy = policy.WithSnack()
	}

	opts := []Option{WithPolicy(policy)}
	if s.config.RandomTopN > 1 {
		seed := s.config.RandomSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		opts = append(opts, WithRandomTieBreak(rand.New(rand.NewSource(seed)), s.config.RandomTopN))
	}
	return NewEngine(opts...)
}

type snapshot struct {
	catalog []domain.Food
	profile domain.Profile
	history domain.History
}

// loadSnapshot reads catalog, profile and history once so a whole planning
// run sees consistent inputs.
func (s *recommendationService) loadSnapshot(ctx context.Context, userID string) (snapshot, error) {
	catalog, err := s.catalog.GetCatalog(ctx)
	if err != nil {
		return snapshot{}, err
	}

	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return snapshot{}, err
	}

	history, err := s.history.GetHistory(ctx, userID)
	if err != nil {
		return snapshot{}, err
	}

	return snapshot{catalog: catalog, profile: profile, history: history}, nil
}

func (s *recommendationService) GenerateDailyPlan(ctx context.Context, userID string, req domain.DailyPlanRequest) (domain.DailyPlanResponse, error) {
	date, err := resolveDate(req.Date)
	if err != nil {
		return domain.DailyPlanResponse{}, err
	}

	snap, err := s.loadSnapshot(ctx, userID)
	if err != nil {
		return domain.DailyPlanResponse{}, err
	}

	engine := s.newEngine(req.IncludeSnack)
	slots := engine.PlanDay(snap.profile, date, snap.catalog, snap.history)

	res := domain.DailyPlanResponse{
		Date:  date,
		Goals: snap.profile.Goals,
		Meals: make([]domain.RecommendedMeal, 0, len(slots)),
	}
	for _, slot := range slots {
		target := engine.Policy().TargetFor(slot.MealType, snap.profile.Goals)
		res.Meals = append(res.Meals, toRecommendedMeal(slot, target))
		res.Totals = res.Totals.Add(slot.Totals)
	}
	return res, nil
}

func (s *recommendationService) RecommendMeal(ctx context.Context, userID string, req domain.MealRecommendationRequest) (domain.RecommendedMeal, error) {
	if !domain.IsMealType(req.MealType) {
		return domain.RecommendedMeal{}, domain.ErrInvalidMealType
	}
	date, err := resolveDate(req.Date)
	if err != nil {
		return domain.RecommendedMeal{}, err
	}

	snap, err := s.loadSnapshot(ctx, userID)
	if err != nil {
		return domain.RecommendedMeal{}, err
	}

	engine := s.newEngine(false)
	target := engine.Policy().TargetFor(req.MealType, snap.profile.Goals)
	slot := engine.Assemble(snap.profile, req.MealType, target, snap.catalog, snap.history)
	slot.Date = date
	return toRecommendedMeal(slot, target), nil
}

func (s *recommendationService) GetAlternatives(ctx context.Context, userID, foodID string, count int) ([]domain.FoodItemResponse, error) {
	snap, err := s.loadSnapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	var current *domain.Food
	for i := range snap.catalog {
		if snap.catalog[i].ID == foodID {
			current = &snap.catalog[i]
			break
		}
	}
	if current == nil {
		return nil, domain.ErrFoodItemNotFound
	}

	if count > maxAlternativeCount {
		count = maxAlternativeCount
	}
	alternatives := s.newEngine(false).Alternatives(*current, snap.profile, snap.catalog, snap.history, count)

	res := make([]domain.FoodItemResponse, 0, len(alternatives))
	for _, f := range alternatives {
		res = append(res, food.FoodResponse(f))
	}
	return res, nil
}

// AcceptPlan stores the chosen slots as recommended meals.
func (s *recommendationService) AcceptPlan(ctx context.Context, userID string, req domain.AcceptPlanRequest) ([]domain.MealResponse, error) {
	if len(req.Meals) == 0 {
		return nil, domain.ErrEmptyPlan
	}
	date, err := resolveDate(req.Date)
	if err != nil {
		return nil, err
	}

	reqs := make([]domain.LogMealRequest, 0, len(req.Meals))
	for _, m := range req.Meals {
		reqs = append(reqs, domain.LogMealRequest{
			Date:          date,
			MealType:      m.MealType,
			FoodItemIDs:   m.FoodItemIDs,
			IsRecommended: true,
		})
	}
	return s.history.LogMeals(ctx, userID, reqs)
}

func (s *recommendationService) CheckBalance(ctx context.Context, req domain.BalanceCheckRequest) (domain.BalanceCheckResponse, error) {
	catalog, err := s.catalog.GetCatalog(ctx)
	if err != nil {
		return domain.BalanceCheckResponse{}, err
	}
	byID := make(map[string]domain.Food, len(catalog))
	for _, f := range catalog {
		byID[f.ID] = f
	}

	foods := make([]domain.Food, 0, len(req.FoodItemIDs))
	for _, id := range req.FoodItemIDs {
		f, ok := byID[id]
		if !ok {
			return domain.BalanceCheckResponse{}, domain.ErrUnknownFoodInMeal
		}
		foods = append(foods, f)
	}

	tolerance := DefaultBalanceTolerance
	if req.Tolerance != nil {
		tolerance = *req.Tolerance
	}

	slot := domain.NewMealSlot("", "", foods)
	return domain.BalanceCheckResponse{
		Calories:       slot.Totals.Calories,
		TargetCalories: req.TargetCalories,
		Tolerance:      tolerance,
		IsBalanced:     IsBalanced(slot, req.TargetCalories, tolerance),
	}, nil
}

// EmailDailyPlan generates the plan for date and mails it to toEmail. A plan
// without any food is not sent.
func (s *recommendationService) EmailDailyPlan(ctx context.Context, userID, toEmail, name, date string) error {
	if s.mailer == nil {
		return domain.ErrMailDisabled
	}

	plan, err := s.GenerateDailyPlan(ctx, userID, domain.DailyPlanRequest{Date: date})
	if err != nil {
		return err
	}

	empty := true
	for _, m := range plan.Meals {
		if len(m.Foods) > 0 {
			empty = false
			break
		}
	}
	if empty {
		return domain.ErrEmptyPlan
	}

	return s.mailer.SendDailyPlan(toEmail, name, plan)
}

func toRecommendedMeal(slot domain.MealSlot, target domain.Macros) domain.RecommendedMeal {
	foods := make([]domain.FoodItemResponse, 0, len(slot.Foods))
	for _, f := range slot.Foods {
		foods = append(foods, food.FoodResponse(f))
	}
	return domain.RecommendedMeal{
		MealType:   slot.MealType,
		Date:       slot.Date,
		Foods:      foods,
		Totals:     slot.Totals,
		Target:     target,
		IsBalanced: IsBalanced(slot, target.Calories, DefaultBalanceTolerance),
	}
}

func resolveDate(date string) (string, error) {
	if date == "" {
		return time.Now().Format(domain.DateLayout), nil
	}
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return "", domain.ErrInvalidDate
	}
	return date, nil
}
