// Package models содержит доменные структуры приложения: пользователей,
// упражнения, программы тренировок и записи о выполненных упражнениях.
// Структуры используются в бизнес-логике и при работе с хранилищем.
package models

// Роли пользователя. У пользователя ровно одна роль.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// User представляет зарегистрированного пользователя системы.
// Хэш пароля никогда не сериализуется в JSON-ответы.
type User struct {
	ID           int     `json:"id"`
	Email        string  `json:"email"`
	PasswordHash string  `json:"-"`
	Role         string  `json:"role"`
	Name         *string `json:"name,omitempty"`
	Surname      *string `json:"surname,omitempty"`
	NickName     *string `json:"nickName,omitempty"`
	Age          *int    `json:"age,omitempty"`
}

// RedactedUser — урезанная проекция пользователя для обычных пользователей:
// только идентификатор и никнейм.
type RedactedUser struct {
	ID       int     `json:"id"`
	NickName *string `json:"nickName"`
}

// Redacted возвращает урезанную проекцию пользователя.
func (u *User) Redacted() RedactedUser {
	return RedactedUser{
		ID:       u.ID,
		NickName: u.NickName,
	}
}

// Identity — личность вызывающего, восстановленная из проверенного токена.
type Identity struct {
	ID   int
	Role string
}

// IsAdmin сообщает, обладает ли вызывающий правами администратора.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// RegisterRequest используется для приёма данных регистрации из JSON-запроса.
type RegisterRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=ADMIN USER"`
	Name     *string `json:"name,omitempty"`
	Surname  *string `json:"surname,omitempty"`
	NickName *string `json:"nickName,omitempty"`
	Age      *int    `json:"age,omitempty" validate:"omitempty,gte=1"`
}

// UpdateUserRequest описывает частичное обновление пользователя администратором.
// Nil-поля не изменяются.
type UpdateUserRequest struct {
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=ADMIN USER"`
	Name     *string `json:"name,omitempty"`
	Surname  *string `json:"surname,omitempty"`
	NickName *string `json:"nickName,omitempty"`
	Age      *int    `json:"age,omitempty" validate:"omitempty,gte=1"`
}
