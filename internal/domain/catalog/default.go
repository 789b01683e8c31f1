package catalog

// Fixture data for the demo deployment. Matches the catalogs the product
// was launched with; ids are referenced by existing bookings, so keep them
// stable.
func Default() (*Catalog, error) {
	plans := []Plan{
		{
			ID:          "plan1",
			Name:        "Aseo Básico",
			Description: "Cuidado esencial para una mascota feliz.",
			Price:       45,
			Features:    []string{"1 Sesión de Aseo", "Corte de Uñas", "Limpieza de Oídos", "Corte de Pelo"},
		},
		{
			ID:          "plan2",
			Name:        "Mimo Premium",
			Description: "La experiencia de spa definitiva.",
			Price:       75,
			Features:    []string{"2 Sesiones de Aseo", "Champú Premium", "Tratamiento de Bálsamo para Patas", "Cepillado de Dientes", "Corte de Pelo Estilizado"},
		},
		{
			ID:          "plan3",
			Name:        "Bienestar Mensual",
			Description: "Cuidado constante para una salud duradera.",
			Price:       120,
			Features:    []string{"4 Sesiones de Aseo", "Paquete de Spa Completo", "Revisión de Salud Mensual", "Reserva Prioritaria", "Cortes de Pelo a Demanda"},
		},
	}

	branches := []Branch{
		{ID: "b1", Name: "Sucursal Palermo", Address: "Av. Santa Fe 4567"},
		{ID: "b2", Name: "Sucursal Belgrano", Address: "Av. Cabildo 1234"},
		{ID: "b3", Name: "Sucursal Recoleta", Address: "Av. Alvear 789"},
		{ID: "b4", Name: "Sucursal Caballito", Address: "Av. Rivadavia 5678"},
		{ID: "b5", Name: "Sucursal Nuñez", Address: "Av. del Libertador 8901"},
		{ID: "b6", Name: "Sucursal Villa Urquiza", Address: "Av. Triunvirato 2345"},
	}

	timeSlots := []string{"09:00 AM", "10:00 AM", "11:00 AM", "02:00 PM", "03:00 PM", "04:00 PM"}

	return New(plans, branches, timeSlots)
}
