package volunteering

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// VolunteeringRepository handles both sides of the task/volunteer relation.
type VolunteeringRepository struct {
	tasksCollection      *mongo.Collection
	volunteersCollection *mongo.Collection
}

func NewVolunteeringRepository(db *mongo.Database) *VolunteeringRepository {
	return &VolunteeringRepository{
		tasksCollection:      db.Collection("tasks"),
		volunteersCollection: db.Collection("volunteers"),
	}
}

// Task operations

func (r *VolunteeringRepository) InsertTask(ctx context.Context, task *Task) error {
	_, err := r.tasksCollection.InsertOne(ctx, task)
	return err
}

func (r *VolunteeringRepository) FindTaskByID(ctx context.Context, id primitive.ObjectID) (*Task, error) {
	var task Task
	err := r.tasksCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&task)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func expandVolunteers() []bson.M {
	return []bson.M{
		{"$lookup": bson.M{
			"from":         "volunteers",
			"localField":   "assignedVolunteers",
			"foreignField": "_id",
			"as":           "assignedVolunteers",
		}},
		{"$project": bson.M{
			"title":                    1,
			"description":              1,
			"location":                 1,
			"date":                     1,
			"duration":                 1,
			"difficulty":               1,
			"status":                   1,
			"category":                 1,
			"createdAt":                1,
			"assignedVolunteers._id":   1,
			"assignedVolunteers.name":  1,
			"assignedVolunteers.email": 1,
		}},
	}
}

func (r *VolunteeringRepository) FindAllTasksWithVolunteers(ctx context.Context) ([]*TaskWithVolunteers, error) {
	cursor, err := r.tasksCollection.Aggregate(ctx, expandVolunteers())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	tasks := []*TaskWithVolunteers{}
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *VolunteeringRepository) FindTaskByIDWithVolunteers(ctx context.Context, id primitive.ObjectID) (*TaskWithVolunteers, error) {
	pipeline := append([]bson.M{{"$match": bson.M{"_id": id}}}, expandVolunteers()...)
	cursor, err := r.tasksCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var tasks []*TaskWithVolunteers
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, nil
	}
	return tasks[0], nil
}

func (r *VolunteeringRepository) ReplaceTask(ctx context.Context, task *Task) error {
	_, err := r.tasksCollection.ReplaceOne(ctx, bson.M{"_id": task.ID}, task)
	return err
}

// AddVolunteerToTask adds the volunteer ID to the task's mirror array.
// $addToSet keeps the write idempotent under repeated assignment.
func (r *VolunteeringRepository) AddVolunteerToTask(ctx context.Context, taskID, volunteerID primitive.ObjectID) error {
	update := bson.M{"$addToSet": bson.M{"assignedVolunteers": volunteerID}}
	_, err := r.tasksCollection.UpdateOne(ctx, bson.M{"_id": taskID}, update)
	return err
}

// Volunteer operations

func (r *VolunteeringRepository) InsertVolunteer(ctx context.Context, volunteer *Volunteer) error {
	_, err := r.volunteersCollection.InsertOne(ctx, volunteer)
	return err
}

func (r *VolunteeringRepository) FindVolunteerByID(ctx context.Context, id primitive.ObjectID) (*Volunteer, error) {
	var volunteer Volunteer
	err := r.volunteersCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&volunteer)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &volunteer, nil
}

func expandTasks() []bson.M {
	return []bson.M{
		{"$lookup": bson.M{
			"from":         "tasks",
			"localField":   "assignedTasks",
			"foreignField": "_id",
			"as":           "assignedTasks",
		}},
		{"$project": bson.M{
			"user":                1,
			"name":                1,
			"email":               1,
			"message":             1,
			"phone":               1,
			"skills":              1,
			"availability":        1,
			"interests":           1,
			"status":              1,
			"totalHours":          1,
			"createdAt":           1,
			"assignedTasks._id":   1,
			"assignedTasks.title": 1,
			"assignedTasks.date":  1,
		}},
	}
}

func (r *VolunteeringRepository) FindAllVolunteersWithTasks(ctx context.Context) ([]*VolunteerWithTasks, error) {
	pipeline := append(expandTasks(), bson.M{"$sort": bson.M{"createdAt": -1}})
	cursor, err := r.volunteersCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	volunteers := []*VolunteerWithTasks{}
	if err := cursor.All(ctx, &volunteers); err != nil {
		return nil, err
	}
	return volunteers, nil
}

func (r *VolunteeringRepository) FindVolunteerByIDWithTasks(ctx context.Context, id primitive.ObjectID) (*VolunteerWithTasks, error) {
	pipeline := append([]bson.M{{"$match": bson.M{"_id": id}}}, expandTasks()...)
	cursor, err := r.volunteersCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var volunteers []*VolunteerWithTasks
	if err := cursor.All(ctx, &volunteers); err != nil {
		return nil, err
	}
	if len(volunteers) == 0 {
		return nil, nil
	}
	return volunteers[0], nil
}

func (r *VolunteeringRepository) ReplaceVolunteer(ctx context.Context, volunteer *Volunteer) error {
	_, err := r.volunteersCollection.ReplaceOne(ctx, bson.M{"_id": volunteer.ID}, volunteer)
	return err
}

// AddTaskToVolunteer adds the task ID to the volunteer's mirror array and
// activates the volunteer. The status transition is one-directional.
func (r *VolunteeringRepository) AddTaskToVolunteer(ctx context.Context, volunteerID, taskID primitive.ObjectID) error {
	update := bson.M{
		"$addToSet": bson.M{"assignedTasks": taskID},
		"$set":      bson.M{"status": "Active"},
	}
	_, err := r.volunteersCollection.UpdateOne(ctx, bson.M{"_id": volunteerID}, update)
	return err
}
