package achievements

import "github.com/civics-prep/backend/internal/models"

// Def defines a single achievement. NameVI/DescriptionVI carry the
// Vietnamese strings shown by default in the client.
type Def struct {
	Name          string `json:"name"`
	NameVI        string `json:"name_vi"`
	Description   string `json:"description"`
	DescriptionVI string `json:"description_vi"`
	XP            int    `json:"xp"`
}

// masteryThreshold is the per-category mastery percent required for the
// category-master achievements.
const masteryThreshold = 90.0

// Defs maps achievement keys to their definitions.
var Defs = map[string]Def{
	"first_question": {
		Name: "First Steps", NameVI: "Bước Đầu Tiên",
		Description: "Study your first question", DescriptionVI: "Học câu hỏi đầu tiên", XP: 10,
	},
	"questions_50": {
		Name: "Halfway There", NameVI: "Nửa Chặng Đường",
		Description: "Study 50 questions", DescriptionVI: "Học 50 câu hỏi", XP: 50,
	},
	"all_questions": {
		Name: "Full Deck", NameVI: "Trọn Bộ Câu Hỏi",
		Description: "Study all 128 questions", DescriptionVI: "Học hết 128 câu hỏi", XP: 200,
	},
	"first_test": {
		Name: "Test Drive", NameVI: "Bài Thi Đầu Tiên",
		Description: "Complete your first practice test", DescriptionVI: "Hoàn thành bài thi thử đầu tiên", XP: 25,
	},
	"tests_10": {
		Name: "Seasoned Examinee", NameVI: "Thí Sinh Dày Dạn",
		Description: "Complete 10 practice tests", DescriptionVI: "Hoàn thành 10 bài thi thử", XP: 100,
	},
	"first_pass": {
		Name: "Passing Grade", NameVI: "Vượt Qua",
		Description: "Pass a practice test", DescriptionVI: "Đậu một bài thi thử", XP: 50,
	},
	"perfect_test": {
		Name: "Flawless", NameVI: "Hoàn Hảo",
		Description: "Answer every question on a test correctly", DescriptionVI: "Trả lời đúng mọi câu trong một bài thi", XP: 150,
	},
	"senior_pass": {
		Name: "65/20 Ready", NameVI: "Sẵn Sàng 65/20",
		Description: "Pass a senior (65/20) practice test", DescriptionVI: "Đậu bài thi thử dạng 65/20", XP: 75,
	},
	"streak_3": {
		Name: "Getting Started", NameVI: "Khởi Động",
		Description: "3-day study streak", DescriptionVI: "Chuỗi 3 ngày học", XP: 25,
	},
	"streak_7": {
		Name: "Week Warrior", NameVI: "Chiến Binh Tuần",
		Description: "7-day study streak", DescriptionVI: "Chuỗi 7 ngày học", XP: 75,
	},
	"streak_30": {
		Name: "Monthly Master", NameVI: "Bậc Thầy Tháng",
		Description: "30-day study streak", DescriptionVI: "Chuỗi 30 ngày học", XP: 300,
	},
	"flashcards_100": {
		Name: "Card Shark", NameVI: "Cao Thủ Thẻ Nhớ",
		Description: "Review 100 flashcards", DescriptionVI: "Ôn 100 thẻ nhớ", XP: 100,
	},
	"gov_master": {
		Name: "Government Master", NameVI: "Thành Thạo Chính Quyền",
		Description: "Master the American Government category", DescriptionVI: "Thành thạo chủ đề Chính quyền Hoa Kỳ", XP: 150,
	},
	"history_master": {
		Name: "History Master", NameVI: "Thành Thạo Lịch Sử",
		Description: "Master the American History category", DescriptionVI: "Thành thạo chủ đề Lịch sử Hoa Kỳ", XP: 150,
	},
	"symbols_master": {
		Name: "Symbols Master", NameVI: "Thành Thạo Biểu Tượng",
		Description: "Master the Symbols and Holidays category", DescriptionVI: "Thành thạo chủ đề Biểu tượng và Ngày lễ", XP: 150,
	},
}

// Qualified returns the achievement keys the given progress qualifies for.
// The caller filters out keys already unlocked; unlocks are never revoked,
// so a streak that later breaks keeps its streak achievements.
func Qualified(sig *models.ProgressSignals) []string {
	var earned []string

	if sig.QuestionsStudied >= 1 {
		earned = append(earned, "first_question")
	}
	if sig.QuestionsStudied >= 50 {
		earned = append(earned, "questions_50")
	}
	if sig.QuestionsStudied >= models.CatalogSize {
		earned = append(earned, "all_questions")
	}

	if sig.TestsCompleted >= 1 {
		earned = append(earned, "first_test")
	}
	if sig.TestsCompleted >= 10 {
		earned = append(earned, "tests_10")
	}
	if sig.TestsPassed >= 1 {
		earned = append(earned, "first_pass")
	}
	if sig.PerfectTests >= 1 {
		earned = append(earned, "perfect_test")
	}
	if sig.SeniorTestsPassed >= 1 {
		earned = append(earned, "senior_pass")
	}

	if sig.CurrentStreak >= 3 {
		earned = append(earned, "streak_3")
	}
	if sig.CurrentStreak >= 7 {
		earned = append(earned, "streak_7")
	}
	if sig.CurrentStreak >= 30 {
		earned = append(earned, "streak_30")
	}

	if sig.FlashcardsReviewed >= 100 {
		earned = append(earned, "flashcards_100")
	}

	if sig.CategoryMastery[models.CategoryGovernment] >= masteryThreshold {
		earned = append(earned, "gov_master")
	}
	if sig.CategoryMastery[models.CategoryHistory] >= masteryThreshold {
		earned = append(earned, "history_master")
	}
	if sig.CategoryMastery[models.CategorySymbols] >= masteryThreshold {
		earned = append(earned, "symbols_master")
	}

	return earned
}

// TotalXPFor sums the XP awards for a set of achievement keys. Unknown
// keys contribute nothing.
func TotalXPFor(keys []string) int {
	total := 0
	for _, k := range keys {
		total += Defs[k].XP
	}
	return total
}
