package repository

import (
	appointmentRepo "medibook/database/repository/appointment"
	doctorRepo "medibook/database/repository/doctor"
	overrideRepo "medibook/database/repository/override"
)

// Re-export the DoctorRepository interface and constructor.
type DoctorRepository = doctorRepo.DoctorRepository

var NewMongoDoctorRepo = doctorRepo.NewMongoDoctorRepo

// Re-export the AppointmentRepository interface and constructor.
type AppointmentRepository = appointmentRepo.AppointmentRepository

var NewMongoAppointmentRepo = appointmentRepo.NewMongoAppointmentRepo

// Re-export the OverrideRepository interface and constructor.
type OverrideRepository = overrideRepo.OverrideRepository

var NewMongoOverrideRepo = overrideRepo.NewMongoOverrideRepo
