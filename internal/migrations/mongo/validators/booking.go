package validators

import "go.mongodb.org/mongo-driver/bson"

var BookingValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"customerName",
			"email",
			"phoneNumber",
			"travelDate",
			"selectedOptions",
			"totalPrice",
			"status",
			"createdAt",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"customerName": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"email": bson.M{
				"bsonType":  "string",
				"minLength": 3,
			},

			"phoneNumber": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"travelDate": bson.M{
				"bsonType": "date",
			},

			"additionalNotes": bson.M{
				"bsonType": "string",
			},

			"selectedOptions": bson.M{
				"bsonType": "object",
				"additionalProperties": bson.M{
					"bsonType": "object",
					"required": []string{"_id", "name", "price"},
					"properties": bson.M{
						"_id":   bson.M{"bsonType": "string"},
						"name":  bson.M{"bsonType": "string"},
						"price": bson.M{"bsonType": []string{"double", "int", "long", "decimal"}},
					},
				},
			},

			"totalPrice": bson.M{
				"bsonType": []string{"double", "int", "long", "decimal"},
				"minimum":  0,
			},

			"status": bson.M{
				"bsonType": "string",
				"enum": []string{
					"pending",
					"approved",
					"rejected",
				},
			},

			"createdAt": bson.M{
				"bsonType": "date",
			},

			"updatedAt": bson.M{
				"bsonType": "date",
			},
		},
	},
}
