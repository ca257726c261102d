package service

import (
	"context"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifementor/backend/internal/models"
	"github.com/lifementor/backend/internal/repository"
)

// Topic routing patterns, checked in order
var (
	greetingPattern   = regexp.MustCompile(`\b(hi|hello|hey|good morning|good evening)\b`)
	moodPattern       = regexp.MustCompile(`\b(feeling|feel|mood|how am i|doing)\b`)
	studyPattern      = regexp.MustCompile(`\b(study|studies|studying|learn|learning|focus|education|academic)\b`)
	healthPattern     = regexp.MustCompile(`\b(sleep|stress|health|wellness|tired|exhausted|burnout)\b`)
	financePattern    = regexp.MustCompile(`\b(money|spending|budget|finance|expense|save|saving)\b`)
	guidancePattern   = regexp.MustCompile(`\b(help|advice|suggest|recommend|what should|guide)\b`)
	motivationPattern = regexp.MustCompile(`\b(motivate|motivation|inspire|encourage)\b`)
)

var greetings = []string{
	"Hello! How can I support you today?",
	"Hi there! Ready to tackle the day together?",
	"Hey! What's on your mind?",
	"Hello! I'm here to help you balance your life. What would you like to discuss?",
}

var motivations = []string{
	"You're doing great! Every small step forward is progress. Keep going!",
	"Remember: you're not just surviving, you're building the foundation for your future. Stay strong!",
	"Challenges are opportunities in disguise. You've got this!",
	"Your dedication to tracking and improving your life is already a huge achievement. Be proud!",
	"Progress isn't always linear. Some days are harder than others, and that's okay. Keep moving forward!",
}

var highDailySpend = decimal.NewFromInt(40)

// mentorContext is the snapshot of metrics and findings a reply is
// built from
type mentorContext struct {
	study     models.StudyMetrics
	health    models.HealthMetrics
	finance   models.FinanceMetrics
	summary   models.InsightSummary
	burnout   *models.BurnoutFinding
	focus     *models.FocusFinding
	overspend *models.OverspendFinding
}

// chatService implements ChatService with canned, context-aware replies
type chatService struct {
	studyService   StudyService
	healthService  HealthService
	financeService FinanceService
	intelligence   IntelligenceService
	chatRepo       repository.ChatRepository
	pick           func(n int) int
}

// NewChatService creates a new conversational mentor service
func NewChatService(
	studyService StudyService,
	healthService HealthService,
	financeService FinanceService,
	intelligence IntelligenceService,
	chatRepo repository.ChatRepository,
) ChatService {
	return &chatService{
		studyService:   studyService,
		healthService:  healthService,
		financeService: financeService,
		intelligence:   intelligence,
		chatRepo:       chatRepo,
		pick:           rand.Intn,
	}
}

// Respond stores the user message, builds a reply from the current
// metrics and findings, stores it, and returns it
func (s *chatService) Respond(ctx context.Context, message string) (*models.ChatMessage, error) {
	userMsg := &models.ChatMessage{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
		Role:      models.ChatRoleUser,
		Content:   message,
	}
	if err := s.chatRepo.Append(ctx, userMsg); err != nil {
		return nil, fmt.Errorf("failed to store chat message: %w", err)
	}

	mc, err := s.gatherContext(ctx)
	if err != nil {
		return nil, err
	}

	botMsg := &models.ChatMessage{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
		Role:      models.ChatRoleBot,
		Content:   s.generateReply(message, mc),
	}
	if err := s.chatRepo.Append(ctx, botMsg); err != nil {
		return nil, fmt.Errorf("failed to store chat reply: %w", err)
	}

	return botMsg, nil
}

// History returns the most recent chat messages in record order
func (s *chatService) History(ctx context.Context, limit int) ([]models.ChatMessage, error) {
	return s.chatRepo.GetRecent(ctx, limit)
}

func (s *chatService) gatherContext(ctx context.Context) (*mentorContext, error) {
	study, err := s.studyService.GetMetrics(ctx)
	if err != nil {
		return nil, err
	}
	health, err := s.healthService.GetMetrics(ctx)
	if err != nil {
		return nil, err
	}
	finance, err := s.financeService.GetMetrics(ctx)
	if err != nil {
		return nil, err
	}
	insights, err := s.intelligence.RunAnalysis(ctx)
	if err != nil {
		return nil, err
	}
	burnout, err := s.healthService.DetectBurnout(ctx)
	if err != nil {
		return nil, err
	}
	focus, err := s.studyService.DetectFocusIssues(ctx)
	if err != nil {
		return nil, err
	}
	overspend, err := s.financeService.DetectOverspending(ctx)
	if err != nil {
		return nil, err
	}

	return &mentorContext{
		study:     *study,
		health:    *health,
		finance:   *finance,
		summary:   Summarize(insights),
		burnout:   burnout,
		focus:     focus,
		overspend: overspend,
	}, nil
}

func (s *chatService) generateReply(message string, mc *mentorContext) string {
	msg := strings.ToLower(message)

	switch {
	case greetingPattern.MatchString(msg):
		return s.greetingReply(mc)
	case moodPattern.MatchString(msg):
		return moodReply(mc)
	case studyPattern.MatchString(msg):
		return studyReply(mc)
	case healthPattern.MatchString(msg):
		return healthReply(mc)
	case financePattern.MatchString(msg):
		return financeReply(mc)
	case guidancePattern.MatchString(msg):
		return guidanceReply(mc)
	case motivationPattern.MatchString(msg):
		return motivations[s.pick(len(motivations))]
	default:
		return contextualReply(mc)
	}
}

func (s *chatService) greetingReply(mc *mentorContext) string {
	greeting := greetings[s.pick(len(greetings))]
	if mc.burnout != nil && mc.burnout.Severity == models.SeverityHigh {
		return greeting + " I noticed you might be experiencing burnout. Let's talk about it."
	}
	return greeting
}

func moodReply(mc *mentorContext) string {
	var b strings.Builder
	b.WriteString("Based on your recent data, ")

	switch {
	case mc.burnout != nil && mc.burnout.Severity == models.SeverityHigh:
		b.WriteString("I'm concerned about your well-being. Your stress levels are high and sleep quality is poor. ")
		b.WriteString("It's important to prioritize rest and self-care right now. ")
		b.WriteString("Would you like some specific suggestions for managing stress?")
	case mc.health.AvgStress >= 7:
		b.WriteString("you seem to be under significant stress. ")
		b.WriteString("Remember to take breaks and practice relaxation techniques. ")
		b.WriteString("What's been causing the most stress lately?")
	case mc.health.AvgSleep < 6.5:
		b.WriteString("you're not getting enough sleep. ")
		b.WriteString("Quality sleep is crucial for both your health and academic performance. ")
		b.WriteString("Can we work on improving your sleep routine?")
	default:
		b.WriteString("you're doing reasonably well! ")
		b.WriteString("Keep maintaining your balance across education, health, and finances. ")
		b.WriteString("Is there anything specific you'd like to improve?")
	}

	return b.String()
}

func studyReply(mc *mentorContext) string {
	study := mc.study

	if study.AvgFocus > 0 && study.AvgFocus < 6 {
		return fmt.Sprintf(
			"I see your focus has been lower than usual (%.1f/10). This could be related to sleep quality or stress levels. Try the Pomodoro technique: 25 minutes of focused study followed by a 5-minute break. Also, make sure you're studying during your peak energy hours.",
			study.AvgFocus)
	}

	if study.TodayHours == 0 {
		return "You haven't logged any study sessions today. Even 30 minutes of focused study can make a difference. What subject would you like to tackle first?"
	}

	if study.TotalHours > 35 {
		return fmt.Sprintf(
			"You've been studying a lot this week (%.1f hours). While dedication is admirable, remember that quality matters more than quantity. Make sure you're taking breaks and getting enough rest to maintain your focus.",
			study.TotalHours)
	}

	return fmt.Sprintf(
		"You've studied %.1f hours this week with an average focus of %.1f/10. Keep up the good work! Remember to take regular breaks to maintain your productivity.",
		study.TotalHours, study.AvgFocus)
}

func healthReply(mc *mentorContext) string {
	health := mc.health

	if mc.burnout != nil {
		return fmt.Sprintf(
			"I'm detecting signs of burnout. Your average stress is %.1f/10 and you're sleeping %.1f hours per night. Please prioritize rest. Consider: 1) Taking a full rest day, 2) Reducing your workload temporarily, 3) Talking to a counselor. Your well-being is the foundation of everything else.",
			health.AvgStress, health.AvgSleep)
	}

	if health.AvgSleep > 0 && health.AvgSleep < 6 {
		return fmt.Sprintf(
			"Your sleep average is %.1f hours, which is below the recommended 7-8 hours. Poor sleep affects focus, mood, and overall health. Try: establishing a consistent bedtime, avoiding screens before bed, and creating a relaxing evening routine.",
			health.AvgSleep)
	}

	if health.AvgStress >= 7 {
		return fmt.Sprintf(
			"Your stress levels are elevated (%.1f/10). Try these stress-relief techniques: deep breathing exercises, short walks, meditation, or talking to a friend. Remember, managing stress is not a luxury, it's essential for your success.",
			health.AvgStress)
	}

	return fmt.Sprintf(
		"Your health metrics look good! Sleep: %.1fh average, Stress: %.1f/10. Keep maintaining these healthy habits.",
		health.AvgSleep, health.AvgStress)
}

func financeReply(mc *mentorContext) string {
	finance := mc.finance

	if mc.overspend != nil {
		return fmt.Sprintf(
			"I noticed you've exceeded your budget recently. Your weekly spending is %s. Consider: 1) Reviewing your expenses to find areas to cut back, 2) Setting daily spending limits, 3) Finding free alternatives for entertainment. Financial stress can impact your mental health and focus.",
			formatCurrency(finance.WeeklyTotal))
	}

	if finance.AvgDaily.GreaterThan(highDailySpend) {
		return fmt.Sprintf(
			"Your average daily spending is %s, which is quite high. Try the 24-hour rule: wait 24 hours before making non-essential purchases. This helps reduce impulse buying and saves money.",
			formatCurrency(finance.AvgDaily))
	}

	return fmt.Sprintf(
		"Your spending this week is %s. You're managing your finances well! Continue tracking your expenses to maintain awareness of your spending patterns.",
		formatCurrency(finance.WeeklyTotal))
}

func guidanceReply(mc *mentorContext) string {
	if mc.summary.High > 0 {
		return "I've detected some important patterns in your data. Check the Insights section for detailed cross-domain analysis. The most urgent issue is affecting multiple areas of your life, and I have specific recommendations to help you address it."
	}

	if mc.burnout != nil {
		return "My top recommendation right now is to address your burnout risk. Take a rest day, reduce your workload, and prioritize sleep. Everything else can wait, but your health cannot."
	}

	if mc.focus != nil {
		return "Your focus has been declining. This is often related to sleep quality or stress. Make sure you're getting 7-8 hours of sleep, taking regular breaks during study, and managing stress through exercise or relaxation techniques."
	}

	return "You're doing well overall! To optimize further: maintain consistent sleep schedules, use focused study techniques like Pomodoro, track your spending to avoid financial stress, and remember to take breaks. Balance is key!"
}

func contextualReply(mc *mentorContext) string {
	issues := make([]string, 0, 3)
	if mc.burnout != nil {
		issues = append(issues, "burnout risk")
	}
	if mc.focus != nil {
		issues = append(issues, "declining focus")
	}
	if mc.overspend != nil {
		issues = append(issues, "budget concerns")
	}

	if len(issues) > 0 {
		return fmt.Sprintf(
			"I'm here to help you with %s. What would you like to discuss? I can provide specific advice on any aspect of your education, health, or finances.",
			strings.Join(issues, ", "))
	}

	return "I'm here to support you in balancing education, health, and finances. You can ask me about your study habits, sleep patterns, stress levels, spending, or request general guidance. What's on your mind?"
}
