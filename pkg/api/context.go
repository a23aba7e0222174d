package api

// Variable представляет переменную контекста (например, IP цели или учетку)
type Variable struct {
	Value       any    `json:"value"`       // значение произвольного JSON-типа
	ID          string `json:"id"`          // UUID переменной
	Name        string `json:"name"`        // имя, используемое в подстановках {{name}}
	Description string `json:"description"` // описание (может быть пустым)
	Sensitive   bool   `json:"sensitive"`   // чувствительное значение (маскируется в UI)
}

// VariableRequest представляет создание или обновление переменной
type VariableRequest struct {
	Value       any    `json:"value"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Sensitive   bool   `json:"sensitive"`
}

// Context представляет контекст — именованный набор переменных проекта
type Context struct {
	ID          string     `json:"id"`          // UUID контекста
	Name        string     `json:"name"`        // имя контекста
	Description string     `json:"description"` // описание (может быть пустым)
	Variables   []Variable `json:"variables"`   // переменные контекста
}

// ContextRequest представляет создание или обновление контекста
type ContextRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
