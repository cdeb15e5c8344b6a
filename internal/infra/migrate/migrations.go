package migrate

// All returns the registered migrations in application order.
func All() []Migration {
	return []Migration{
		{
			Version: "20250901000001",
			Name:    "initial_schema",
			UpSQL:   initialSchemaUp,
			DownSQL: initialSchemaDown,
		},
	}
}

const initialSchemaUp = `
CREATE TABLE vendors (
    id                 uuid PRIMARY KEY,
    email              text NOT NULL UNIQUE,
    password_hash      text NOT NULL,
    name               text NOT NULL,
    role               text NOT NULL DEFAULT 'vendor',
    confirmed          boolean NOT NULL DEFAULT false,
    confirmation_token text UNIQUE,
    created_at         timestamptz NOT NULL DEFAULT now(),
    updated_at         timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE units (
    id                  uuid PRIMARY KEY,
    label               text NOT NULL UNIQUE,
    unit_type           text NOT NULL,
    monthly_price_cents bigint NOT NULL CHECK (monthly_price_cents >= 0),
    available           boolean NOT NULL DEFAULT true,
    occupied_by         uuid,
    created_at          timestamptz NOT NULL DEFAULT now(),
    updated_at          timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE contracts (
    id                        uuid PRIMARY KEY,
    vendor_id                 uuid NOT NULL REFERENCES vendors (id),
    status                    text NOT NULL,
    scheduled_start           timestamptz NOT NULL,
    duration_months           integer NOT NULL CHECK (duration_months >= 1),
    total_monthly_price_cents bigint NOT NULL CHECK (total_monthly_price_cents >= 0),
    discount_percent          double precision NOT NULL DEFAULT 0,
    trial                     boolean NOT NULL DEFAULT false,
    trial_cancelled           boolean NOT NULL DEFAULT false,
    trial_cancelled_at        timestamptz,
    billable_from             timestamptz NOT NULL,
    impact_from               timestamptz NOT NULL,
    impact_to                 timestamptz NOT NULL,
    created_at                timestamptz NOT NULL DEFAULT now(),
    updated_at                timestamptz NOT NULL DEFAULT now(),
    CHECK (impact_to > impact_from)
);

CREATE TABLE contract_services (
    contract_id uuid NOT NULL REFERENCES contracts (id),
    unit_id     uuid NOT NULL REFERENCES units (id),
    lease_from  timestamptz NOT NULL,
    lease_to    timestamptz NOT NULL,
    PRIMARY KEY (contract_id, unit_id)
);

CREATE TABLE pending_bookings (
    vendor_id           uuid PRIMARY KEY REFERENCES vendors (id),
    package_name        text NOT NULL,
    monthly_price_cents bigint NOT NULL CHECK (monthly_price_cents >= 0),
    setup_fee_cents     bigint NOT NULL CHECK (setup_fee_cents >= 0),
    unit_counts         jsonb NOT NULL,
    addons              text[] NOT NULL DEFAULT '{}',
    requested_start     timestamptz NOT NULL,
    duration_months     integer NOT NULL CHECK (duration_months >= 1),
    trial               boolean NOT NULL DEFAULT false,
    status              text NOT NULL DEFAULT 'pending',
    requested_at        timestamptz NOT NULL,
    contract_id         uuid REFERENCES contracts (id),
    assigned_unit_ids   uuid[]
);

CREATE TABLE store_settings (
    id                 smallint PRIMARY KEY CHECK (id = 1),
    opening_enabled    boolean NOT NULL DEFAULT false,
    opening_date       timestamptz,
    reminder_lead_days integer NOT NULL DEFAULT 14,
    updated_by         uuid,
    updated_at         timestamptz NOT NULL DEFAULT now()
);

CREATE INDEX idx_contracts_vendor_id ON contracts (vendor_id);
CREATE INDEX idx_contracts_status ON contracts (status);
CREATE INDEX idx_contract_services_unit_id ON contract_services (unit_id);
CREATE INDEX idx_pending_bookings_status ON pending_bookings (status);
`

const initialSchemaDown = `
DROP TABLE IF EXISTS store_settings;
DROP TABLE IF EXISTS pending_bookings;
DROP TABLE IF EXISTS contract_services;
DROP TABLE IF EXISTS contracts;
DROP TABLE IF EXISTS units;
DROP TABLE IF EXISTS vendors;
`
