package models

// User описывает пользователя. Хеш пароля никогда не сериализуется.
type User struct {
	ID           int64  `db:"id" json:"id"`
	Username     string `db:"username" json:"username"`
	PasswordHash string `db:"password" json:"-"`
}
