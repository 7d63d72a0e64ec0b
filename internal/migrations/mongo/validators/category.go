package validators

import "go.mongodb.org/mongo-driver/bson"

var CategoryValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{"name", "options"},
		"properties": bson.M{
			"name": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 100,
			},
			"options": bson.M{
				"bsonType": "array",
				"items": bson.M{
					"bsonType": "object",
					"required": []string{"_id", "name", "price", "isAvailable", "itemId", "itemModel"},
					"properties": bson.M{
						"price": bson.M{
							"bsonType": []string{"double", "int", "long", "decimal"},
							"minimum":  0,
						},
						"isAvailable": bson.M{"bsonType": "bool"},
						"itemModel": bson.M{
							"bsonType": "string",
							"enum":     []string{"Employee", "Hotel", "Vehicle"},
						},
					},
				},
			},
		},
	},
}
