package apimodel

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Collection is implemented by every wire collection.
type Collection[E any] interface {
	Entities() []E
}

// settableCollection is the write side used when assembling an array-root collection.
type settableCollection[WC any, E any] interface {
	*WC
	Collection[E]
	setEntities(items []E)
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}

// FromJSON parses a single wire value.
func FromJSON[T any](data []byte) (*T, error) {
	var value T

	err := json.Unmarshal(data, &value)
	if err != nil {
		return nil, decodeError(typeName[T](), err)
	}

	return &value, nil
}

// ParseEntity parses a single wire entity by value. It is the default item parser for
// CollectionFromJSONArray.
func ParseEntity[T any](data []byte) (T, error) {
	var value T

	err := json.Unmarshal(data, &value)
	if err != nil {
		return value, decodeError(typeName[T](), err)
	}

	return value, nil
}

// ToJSON serializes a wire value.
func ToJSON(value interface{}) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("encoding %T: %w", value, err)
	}

	return data, nil
}

// CollectionFromJSON parses an object-root collection such as {"Projects": [...]}.
func CollectionFromJSON[WC any](data []byte) (*WC, error) {
	return FromJSON[WC](data)
}

// CollectionFromJSONArray parses an array-root collection. The outer array is split into raw
// elements first and each element goes through parse on its own, so unknown fields and
// per-element shape survive exactly as the server sent them.
func CollectionFromJSONArray[WC any, E any, PWC settableCollection[WC, E]](data []byte, parse func([]byte) (E, error)) (*WC, error) {
	var elements []json.RawMessage

	err := json.Unmarshal(data, &elements)
	if err != nil {
		return nil, decodeError(typeName[WC]()+" array", err)
	}

	items := make([]E, 0, len(elements))

	for index, element := range elements {
		item, err := parse(element)
		if err != nil {
			return nil, fmt.Errorf("parsing %s element %d: %w", typeName[WC](), index, err)
		}

		items = append(items, item)
	}

	var collection WC

	PWC(&collection).setEntities(items)

	return &collection, nil
}

// CollectionToJSONArray serializes a collection as a bare JSON array. A nil or empty collection
// encodes as [].
func CollectionToJSONArray[E any](collection Collection[E]) ([]byte, error) {
	items := collection.Entities()
	if items == nil {
		items = []E{}
	}

	return ToJSON(items)
}
