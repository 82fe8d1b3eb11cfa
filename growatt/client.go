package growatt

// Client bundles one service per Growatt device family on top of a shared
// authenticated session.
//
// API documents:
//   - v1 (full-featured API): https://www.showdoc.com.cn/262556420217021/0
//   - v4 (new API with a reduced endpoint set): https://www.showdoc.com.cn/2540838290984246/0
type Client struct {
	Session *Session

	User       *UserService
	Plant      *PlantService
	Device     *DeviceService
	Datalogger *DataloggerService
	Inverter   *InverterService
	Storage    *StorageService
	Min        *MinService
	Max        *MaxService
	Sph        *SphService
	Spa        *SpaService
	Pcs        *PcsService
	Hps        *HpsService
	Pbd        *PbdService
	SmartMeter *SmartMeterService
	EnvSensor  *EnvSensorService
	Groboost   *GroboostService
	Wit        *WitService
	Sphs       *SphsService
	Noah       *NoahService
	Vpp        *VppService
	V4         *V4Service
}

// NewClient returns a client authenticated with the given API token.
func NewClient(token string, opts ...Option) (*Client, error) {
	session, err := NewSession(token, opts...)
	if err != nil {
		return nil, err
	}

	v4 := &V4Service{session: session}

	return &Client{
		Session:    session,
		User:       &UserService{session: session},
		Plant:      &PlantService{session: session},
		Device:     &DeviceService{session: session},
		Datalogger: &DataloggerService{session: session},
		Inverter:   &InverterService{session: session},
		Storage:    &StorageService{session: session},
		Min:        &MinService{session: session},
		Max:        &MaxService{session: session},
		Sph:        &SphService{session: session},
		Spa:        &SpaService{session: session},
		Pcs:        &PcsService{session: session},
		Hps:        &HpsService{session: session},
		Pbd:        &PbdService{session: session},
		SmartMeter: &SmartMeterService{session: session},
		EnvSensor:  &EnvSensorService{session: session},
		Groboost:   &GroboostService{session: session},
		Wit:        &WitService{session: session, v4: v4},
		Sphs:       &SphsService{session: session, v4: v4},
		Noah:       &NoahService{session: session, v4: v4},
		Vpp:        &VppService{session: session},
		V4:         v4,
	}, nil
}
