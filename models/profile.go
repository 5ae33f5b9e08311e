package models

// Profile is a read-only candidate card. The external profile directory owns
// these records; the engine only reads them.
type Profile struct {
	ProfileID string   `dynamodbav:"profileId" json:"profileId"`
	Name      string   `dynamodbav:"name" json:"name"`
	Age       int      `dynamodbav:"age" json:"age"`
	GenderTag string   `dynamodbav:"genderTag" json:"genderTag"`
	Location  string   `dynamodbav:"location,omitempty" json:"location,omitempty"`
	Job       string   `dynamodbav:"job,omitempty" json:"job,omitempty"`
	Tags      []string `dynamodbav:"tags,omitempty" json:"tags,omitempty"`
	ImageRef  string   `dynamodbav:"imageRef,omitempty" json:"imageRef,omitempty"`
}

// ProfilesTable is the DynamoDB table name for candidate profiles
const ProfilesTable = "Profiles"
