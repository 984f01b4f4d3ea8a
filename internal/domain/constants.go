package domain

// Геометрия зала (фиксированная сетка мест)
const (
	GridRows        = 10
	GridSeatsPerRow = 10
)

// Ограничения бронирования
const (
	// MaxSeatsPerBooking максимальное количество мест в одном бронировании
	MaxSeatsPerBooking = 10

	// PhoneDigits требуемое количество цифр в номере телефона
	PhoneDigits = 10

	MaxCustomerNameLength = 100
)

// SessionKeySeparator разделитель компонентов ключа сессии.
// Если значение поля легитимно содержит "_", ключи могут коллизировать -
// известное ограничение, унаследованное от формата хранилища.
const SessionKeySeparator = "_"

// DateFormat формат даты бронирования
const DateFormat = "2006-01-02" // YYYY-MM-DD
