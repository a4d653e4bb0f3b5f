package service

// Style 帖子风格（封闭枚举）
type Style string

const (
	StyleInspirational Style = "inspirational"
	StyleEducational   Style = "educational"
	StyleSuccessStory  Style = "success_story"
	StyleTips          Style = "tips"
	StyleProvocative   Style = "provocative"
)

// 每种风格对应的写作指引（俄语，随提示词一起发给模型）
var styleGuidelines = map[Style]string{
	StyleInspirational: `
    Стиль: ВДОХНОВЛЯЮЩИЙ
    - Мотивирующий тон
    - Личная история или инсайт
    - Призыв к действию и росту
    - Эмоциональное воздействие
    - Используй метафоры и яркие образы
  `,
	StyleEducational: `
    Стиль: ОБРАЗОВАТЕЛЬНЫЙ
    - Делись конкретными знаниями
    - Структурированная информация
    - Практические советы
    - Цифры и факты
    - Пошаговые инструкции если уместно
  `,
	StyleSuccessStory: `
    Стиль: ИСТОРИЯ УСПЕХА
    - Рассказ о достижении/преодолении
    - Было/стало формат
    - Конкретные результаты с цифрами
    - Уроки и выводы
    - Честность о трудностях
  `,
	StyleTips: `
    Стиль: СОВЕТЫ
    - 3-5 коротких практических советов
    - Нумерованный или маркированный список
    - Каждый совет - конкретное действие
    - Можно использовать эмодзи для пунктов
    - Легко применить сегодня
  `,
	StyleProvocative: `
    Стиль: ПРОВОКАЦИОННЫЙ
    - Противоречивая или смелая идея
    - Вызов устоявшимся мнениям
    - Сильная позиция автора
    - Призыв к дискуссии
    - Не оскорбительно, но заставляет думать
  `,
}

// IsValidStyle 判断是否为已知风格
func IsValidStyle(style string) bool {
	_, ok := styleGuidelines[Style(style)]
	return ok
}

// guidelineFor 返回风格对应的指引，未知风格兜底为 inspirational
// HTTP 层已经拒绝了未知风格，这里不依赖这一点
func guidelineFor(style Style) string {
	if g, ok := styleGuidelines[style]; ok {
		return g
	}
	return styleGuidelines[StyleInspirational]
}
