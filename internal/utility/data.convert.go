package utility

import (
	"strconv"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// String2ObjectID convierte un string hex a primitive.ObjectID.
// Devuelve el ObjectID cero si el string no es válido; validar antes con
// primitive.IsValidObjectID cuando el llamador necesita distinguirlo.
func String2ObjectID(id string) primitive.ObjectID {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID
	}
	return objID
}

// P2Int64 convierte un string a int64, devolviendo 0 si no es parseable
func P2Int64(s string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}
