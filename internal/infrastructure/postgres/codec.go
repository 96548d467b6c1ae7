package postgres

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/soportec/gestor-api/internal/domain/entity"
)

// Codec del almacén de registros: funciones puras, aisladas de I/O, que
// convierten entre la representación de almacenamiento (texto plano) y las
// entidades del dominio.
//
// Reglas uniformes:
//   - listas de objetos (contactos, mensajes, líneas de cotización) se guardan
//     como JSON serializado; vacío o ausente decodifica a lista vacía, nunca a
//     error;
//   - listas de IDs escalares se guardan separadas por comas; vacío decodifica
//     a lista vacía;
//   - la ida y vuelta encode→decode es idempotente (ver codec_test.go).

// EncodeContacts serializa los contactos como JSON.
func EncodeContacts(contacts []entity.Contact) (string, error) {
	if len(contacts) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(contacts)
	if err != nil {
		return "", fmt.Errorf("serializar contactos: %w", err)
	}
	return string(b), nil
}

// DecodeContacts deserializa contactos; vacío o ausente devuelve lista vacía.
func DecodeContacts(s string) ([]entity.Contact, error) {
	if strings.TrimSpace(s) == "" {
		return []entity.Contact{}, nil
	}
	var out []entity.Contact
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, fmt.Errorf("deserializar contactos: %w", err)
	}
	if out == nil {
		out = []entity.Contact{}
	}
	return out, nil
}

// EncodeIDList serializa IDs como texto separado por comas ("1,2,3").
func EncodeIDList(ids []int) string {
	if len(ids) == 0 {
		return ""
	}
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.Itoa(id))
	}
	return strings.Join(parts, ",")
}

// DecodeIDList deserializa una lista separada por comas, descartando entradas
// vacías o no numéricas (IDs colgantes mal formados se toleran al leer).
func DecodeIDList(s string) []int {
	out := []int{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if id, err := strconv.Atoi(part); err == nil {
			out = append(out, id)
		}
	}
	return out
}

// EncodeMessages serializa la conversación de un ticket como JSON.
func EncodeMessages(messages []entity.Message) (string, error) {
	if len(messages) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(messages)
	if err != nil {
		return "", fmt.Errorf("serializar mensajes: %w", err)
	}
	return string(b), nil
}

// DecodeMessages deserializa mensajes; vacío o ausente devuelve lista vacía.
func DecodeMessages(s string) ([]entity.Message, error) {
	if strings.TrimSpace(s) == "" {
		return []entity.Message{}, nil
	}
	var out []entity.Message
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, fmt.Errorf("deserializar mensajes: %w", err)
	}
	if out == nil {
		out = []entity.Message{}
	}
	return out, nil
}

// EncodeItems serializa las líneas de una cotización como JSON.
func EncodeItems(items []entity.QuoteItem) (string, error) {
	if len(items) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("serializar líneas: %w", err)
	}
	return string(b), nil
}

// DecodeItems deserializa líneas; vacío o ausente devuelve lista vacía.
func DecodeItems(s string) ([]entity.QuoteItem, error) {
	if strings.TrimSpace(s) == "" {
		return []entity.QuoteItem{}, nil
	}
	var out []entity.QuoteItem
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, fmt.Errorf("deserializar líneas: %w", err)
	}
	if out == nil {
		out = []entity.QuoteItem{}
	}
	return out, nil
}

// fallback devuelve def cuando el campo opcional viene vacío del almacén.
func fallback(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
