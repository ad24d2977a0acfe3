package models

// Уровни сложности упражнения.
const (
	DifficultyEasy   = "EASY"
	DifficultyMedium = "MEDIUM"
	DifficultyHard   = "HARD"
)

// Exercise представляет упражнение вместе с программами, в которые оно входит.
type Exercise struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Difficulty string    `json:"difficulty"`
	Programs   []Program `json:"programs"`
}

// Program представляет программу тренировок.
type Program struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CompletedExercise — запись о выполненном упражнении, привязанная к пользователю.
type CompletedExercise struct {
	ID         int `json:"id"`
	UserID     int `json:"userId"`
	ExerciseID int `json:"exerciseId"`
	Duration   int `json:"duration"`
}

// CreateExerciseRequest используется для приёма данных нового упражнения.
// Programs — список идентификаторов программ, к которым сразу привязывается упражнение.
type CreateExerciseRequest struct {
	Name       string `json:"name" validate:"required"`
	Difficulty string `json:"difficulty" validate:"required,oneof=EASY MEDIUM HARD"`
	Programs   []int  `json:"programs,omitempty"`
}

// UpdateExerciseRequest описывает частичное обновление упражнения.
// Присутствующее поле Programs (даже пустое) полностью заменяет набор связей,
// nil оставляет связи нетронутыми.
type UpdateExerciseRequest struct {
	Name       *string `json:"name,omitempty"`
	Difficulty *string `json:"difficulty,omitempty" validate:"omitempty,oneof=EASY MEDIUM HARD"`
	Programs   *[]int  `json:"programs,omitempty"`
}

// ExerciseFilter задаёт параметры выборки упражнений.
// Пагинация активна только когда заданы и Page, и Limit.
type ExerciseFilter struct {
	ProgramID *int
	Search    string
	Page      *int
	Limit     *int
}

// TrackCompletionRequest используется для приёма данных о выполнении упражнения.
type TrackCompletionRequest struct {
	Duration *int `json:"duration" validate:"required,gte=0"`
}
