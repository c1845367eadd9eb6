package utility

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// ToMap convierte un struct (o map) en un map[string]interface{} pasando por BSON.
// Se usa en el base service para agregar timestamps y armar documentos de update
// sin depender del tipo concreto del modelo.
func ToMap(s interface{}) (map[string]interface{}, error) {
	var stringInterfaceMap map[string]interface{}
	raw, err := bson.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("bson marshal: %w", err)
	}
	if err := bson.Unmarshal(raw, &stringInterfaceMap); err != nil {
		return nil, fmt.Errorf("bson unmarshal: %w", err)
	}
	return stringInterfaceMap, nil
}
