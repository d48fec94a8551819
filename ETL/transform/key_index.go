package transform

// KeyIndex присваивает суррогатные ключи уникальным натуральным ключам.
// Идентификаторы плотные, начинаются с 1 и выдаются в порядке первого появления.
type KeyIndex[K comparable] struct {
	ids   map[K]int
	order []K
}

// NewKeyIndex создает пустой индекс
func NewKeyIndex[K comparable]() *KeyIndex[K] {
	return &KeyIndex[K]{ids: make(map[K]int)}
}

// Add возвращает идентификатор ключа, назначая новый при первом появлении
func (x *KeyIndex[K]) Add(key K) (id int, added bool) {
	if id, ok := x.ids[key]; ok {
		return id, false
	}
	x.order = append(x.order, key)
	id = len(x.order)
	x.ids[key] = id
	return id, true
}

// Resolve возвращает идентификатор ранее добавленного ключа
func (x *KeyIndex[K]) Resolve(key K) (int, bool) {
	id, ok := x.ids[key]
	return id, ok
}

// Len возвращает количество уникальных ключей
func (x *KeyIndex[K]) Len() int {
	return len(x.order)
}

// Keys возвращает ключи в порядке назначения идентификаторов
func (x *KeyIndex[K]) Keys() []K {
	return append([]K(nil), x.order...)
}
